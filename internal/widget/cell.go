package widget

import (
	"fmt"
	"math"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/anim"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	markDuration  = 500 * time.Millisecond
	hoverDuration = 100 * time.Millisecond

	// sizes are fractions of the cell side
	markScale   = 0.5
	markWidth   = 0.05
	hoverScale  = 0.9
	hoverRadius = 0.1
)

var (
	markColor  = Grey(200)
	hoverColor = Grey(70)
)

// Cell - one square of the board. Animates its mark in and out and a hover
// highlight while the pointer is over an empty cell.
type Cell struct {
	index int
	size  Size

	// forward while the cell shows a mark
	mark *anim.Reversible[entity.Mark]
	// forward while the highlight is shown
	hover *anim.Reversible[struct{}]
}

func NewCell(index int) *Cell {
	mark := anim.NewReversible(entity.MarkNone, anim.InOutQuart, markDuration)
	mark.Reverse()

	hover := anim.NewReversible(struct{}{}, anim.InOutQuart, hoverDuration)
	hover.Reverse()

	return &Cell{
		index: index,
		mark:  mark,
		hover: hover,
	}
}

func (that *Cell) Lifecycle(*Ctx, *AppState) {}

func (that *Cell) Event(ctx *Ctx, event Event, state *AppState) {
	switch ev := event.(type) {
	case AnimFrame:
		ctx.RequestPaint()
		if !that.mark.Finished() {
			that.mark.Advance(ev.Interval)
			ctx.RequestAnimFrame()
		}
		if !that.hover.Finished() {
			that.hover.Advance(ev.Interval)
			ctx.RequestAnimFrame()
		}
	case MouseDown:
		if ev.Button == ButtonLeft && !state.Game.Done() {
			actor := state.Game.Actor()
			if state.Game.Set(that.index) {
				if actor == entity.MarkNone {
					panic(fmt.Errorf("%w: cell %d placed without a player", apperror.ErrInvalidMark, that.index))
				}

				that.mark.SetData(actor)
				that.mark.Reverse()
				ctx.RequestAnimFrame()
			}
		}
	}

	that.syncHover(ctx, state)
}

// syncHover - the highlight follows the pointer, but never shows on a taken
// cell or a decided board.
func (that *Cell) syncHover(ctx *Ctx, state *AppState) {
	hot := ctx.IsHot()
	shown := !that.hover.IsReverse()
	blocked := !that.mark.IsReverse() || state.Game.Done()

	switch {
	case hot && blocked:
		if shown {
			that.hover.Reverse()
			ctx.RequestAnimFrame()
		}
	case hot != shown:
		that.hover.Reverse()
		ctx.RequestAnimFrame()
	}
}

func (that *Cell) Update(ctx *Ctx, old, state *AppState) {
	if state.Game.Get(that.index) == entity.MarkNone && old.Game.Get(that.index) != entity.MarkNone {
		that.mark.Reverse()
		ctx.RequestAnimFrame()
	}
}

func (that *Cell) Layout(bc Constraints) Size {
	that.size = bc.ConstrainAspectRatio(1, bc.Max.Width/3)

	return that.size
}

func (that *Cell) Paint(canvas Canvas, _ *AppState) {
	size := that.size.Width

	if hover := that.hover.Value(); hover > 0 {
		side := size * hoverScale * hover
		offset := (size - side) / 2
		canvas.FillRoundedRect(Rect{X: offset, Y: offset, Width: side, Height: side}, side*hoverRadius, hoverColor.WithAlpha(hover))
	}

	value := that.mark.Value()
	if value <= 0 {
		return
	}

	width := size * markWidth

	switch that.mark.Data() {
	case entity.MarkX:
		side := size * markScale * value
		offset := (size - side) / 2
		canvas.StrokeLine(Segment{
			From: Point{X: offset, Y: offset},
			To:   Point{X: offset + side, Y: offset + side},
		}, markColor, width)
		canvas.StrokeLine(Segment{
			From: Point{X: offset + side, Y: offset},
			To:   Point{X: offset, Y: offset + side},
		}, markColor, width)
	case entity.MarkO:
		center := size / 2
		canvas.StrokeArc(Point{X: center, Y: center}, markScale*center, 0, 2*math.Pi*value, markColor, width)
	}
}
