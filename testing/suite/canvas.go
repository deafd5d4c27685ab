package suite

import "github.com/rocketscienceinc/tictactoe-desktop/internal/widget"

type OpKind string

const (
	OpFillRoundedRect OpKind = "fill-rounded-rect"
	OpStrokeLine      OpKind = "stroke-line"
	OpStrokeArc       OpKind = "stroke-arc"
)

// Op - one recorded drawing call, coordinates already in root space.
type Op struct {
	Kind    OpKind
	Rect    widget.Rect
	Segment widget.Segment
	Center  widget.Point
	Radius  float64
	Start   float64
	Sweep   float64
	Color   widget.Color
	Width   float64
}

// Canvas - widget.Canvas that records calls instead of drawing.
type Canvas struct {
	Ops []Op

	origin widget.Point
	stack  []widget.Point
}

func (that *Canvas) Push() {
	that.stack = append(that.stack, that.origin)
}

func (that *Canvas) Pop() {
	that.origin = that.stack[len(that.stack)-1]
	that.stack = that.stack[:len(that.stack)-1]
}

func (that *Canvas) Translate(dx, dy float64) {
	that.origin = that.origin.Add(widget.Point{X: dx, Y: dy})
}

func (that *Canvas) FillRoundedRect(rect widget.Rect, radius float64, color widget.Color) {
	that.Ops = append(that.Ops, Op{Kind: OpFillRoundedRect, Rect: rect.Offset(that.origin), Radius: radius, Color: color})
}

func (that *Canvas) StrokeLine(segment widget.Segment, color widget.Color, width float64) {
	that.Ops = append(that.Ops, Op{
		Kind:    OpStrokeLine,
		Segment: widget.Segment{From: segment.From.Add(that.origin), To: segment.To.Add(that.origin)},
		Color:   color,
		Width:   width,
	})
}

func (that *Canvas) StrokeArc(center widget.Point, radius, start, sweep float64, color widget.Color, width float64) {
	that.Ops = append(that.Ops, Op{
		Kind:   OpStrokeArc,
		Center: center.Add(that.origin),
		Radius: radius,
		Start:  start,
		Sweep:  sweep,
		Color:  color,
		Width:  width,
	})
}

// Count - number of recorded calls of kind.
func (that *Canvas) Count(kind OpKind) int {
	n := 0
	for _, op := range that.Ops {
		if op.Kind == kind {
			n++
		}
	}

	return n
}
