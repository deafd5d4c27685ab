package anim

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Curve - easing shape applied to normalized progress. Every curve maps 0 to
// exactly 0 and 1 to exactly 1.
type Curve uint8

const (
	Linear Curve = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
)

var curves = map[Curve]ease.TweenFunc{
	Linear:     ease.Linear,
	InQuad:     ease.InQuad,
	OutQuad:    ease.OutQuad,
	InOutQuad:  ease.InOutQuad,
	InCubic:    ease.InCubic,
	OutCubic:   ease.OutCubic,
	InOutCubic: ease.InOutCubic,
	InQuart:    ease.InQuart,
	OutQuart:   ease.OutQuart,
	InOutQuart: ease.InOutQuart,
}

var curveNames = map[Curve]string{
	Linear:     "linear",
	InQuad:     "in-quad",
	OutQuad:    "out-quad",
	InOutQuad:  "in-out-quad",
	InCubic:    "in-cubic",
	OutCubic:   "out-cubic",
	InOutCubic: "in-out-cubic",
	InQuart:    "in-quart",
	OutQuart:   "out-quart",
	InOutQuart: "in-out-quart",
}

func (that Curve) String() string {
	if name, ok := curveNames[that]; ok {
		return name
	}

	return fmt.Sprintf("curve(%d)", uint8(that))
}

// Ease - interpolates from `from` to `to` at progress, clamped to [0, 1].
func (that Curve) Ease(from, to, progress float64) float64 {
	fn, ok := curves[that]
	if !ok {
		fn = ease.Linear
	}

	progress = min(max(progress, 0), 1)

	return float64(fn(float32(progress), float32(from), float32(to-from), 1))
}
