package widget

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/anim"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	introDuration   = time.Second
	outcomeDuration = 500 * time.Millisecond

	DefaultRestartDelay = time.Second

	// sizes are fractions of the grid side
	gridLineScale = 0.8
	gridLineWidth = 0.0125
	winLineScale  = 2.0 / 3.0
	winLineWidth  = 0.0375
)

var (
	gridLineColor = Grey(175)
	winLineColor  = Grey(220)
)

// Grid - the board: nine cells, the grid lines revealed once at start and the
// winning line revealed when the game is decided. Restarts the game a fixed
// delay after it ends.
type Grid struct {
	cells [entity.BoardSize]*Cell
	size  Size
	cell  Size

	intro   *anim.Animation[struct{}]
	outcome *anim.Reversible[entity.Line]

	restart      TimerToken
	restartDelay time.Duration
	newGame      func() entity.Game
}

// GridOption - configures a Grid.
type GridOption func(*Grid)

// WithRestartDelay - time between the end of a game and the next one.
func WithRestartDelay(delay time.Duration) GridOption {
	return func(g *Grid) {
		g.restartDelay = delay
	}
}

// WithNewGame - factory for the game started after a restart.
func WithNewGame(newGame func() entity.Game) GridOption {
	return func(g *Grid) {
		g.newGame = newGame
	}
}

func NewGrid(opts ...GridOption) *Grid {
	outcome := anim.NewReversible(entity.LineRow0, anim.InCubic, outcomeDuration)
	outcome.Reverse()

	grid := &Grid{
		intro:        anim.New(struct{}{}, anim.InCubic, introDuration),
		outcome:      outcome,
		restartDelay: DefaultRestartDelay,
		newGame: func() entity.Game {
			return entity.NewGame(entity.MarkNone)
		},
	}

	for i := range grid.cells {
		grid.cells[i] = NewCell(i)
	}

	for _, opt := range opts {
		opt(grid)
	}

	return grid
}

// CellRect - bounds of the cell at index, relative to the grid.
func (that *Grid) CellRect(index int) Rect {
	return Rect{
		X:      float64(index%3) * that.cell.Width,
		Y:      float64(index/3) * that.cell.Height,
		Width:  that.cell.Width,
		Height: that.cell.Height,
	}
}

func (that *Grid) Lifecycle(ctx *Ctx, state *AppState) {
	if that.intro.Starting() {
		ctx.RequestAnimFrame()
	}

	for i, cell := range that.cells {
		cell.Lifecycle(ctx.Child(that.CellRect(i)), state)
	}
}

func (that *Grid) Event(ctx *Ctx, event Event, state *AppState) {
	switch ev := event.(type) {
	case AnimFrame:
		ctx.RequestPaint()
		if !that.intro.Finished() {
			that.intro.Advance(ev.Interval)
			ctx.RequestAnimFrame()
		}
		if !that.outcome.Finished() {
			that.outcome.Advance(ev.Interval)
			ctx.RequestAnimFrame()
		}
	case TimerFired:
		if that.restart != NoTimer && ev.Token == that.restart {
			that.restart = NoTimer
			state.Game = that.newGame()
		}
	}

	_, click := event.(MouseDown)

	for i, cell := range that.cells {
		child := ctx.Child(that.CellRect(i))
		if click && !child.IsHot() {
			continue
		}

		cell.Event(child, event, state)
	}
}

func (that *Grid) Update(ctx *Ctx, old, state *AppState) {
	before, wasDone := old.Game.Outcome()
	after, done := state.Game.Outcome()

	switch {
	case done && (!wasDone || before != after):
		that.outcome.SetData(after.Line)
		if that.outcome.IsReverse() {
			that.outcome.Reverse()
		}
		ctx.RequestAnimFrame()
	case !done && wasDone:
		if !that.outcome.IsReverse() {
			that.outcome.Reverse()
		}
		ctx.RequestAnimFrame()
	}

	if (done || state.Game.Draw()) && that.restart == NoTimer {
		that.restart = ctx.RequestTimer(that.restartDelay)
	}

	for i, cell := range that.cells {
		cell.Update(ctx.Child(that.CellRect(i)), old, state)
	}
}

// Layout - the largest square that fits, split into three by three cells.
func (that *Grid) Layout(bc Constraints) Size {
	that.size = bc.ConstrainAspectRatio(1, bc.Max.Width)

	inner := Constraints{Max: that.size}
	for _, cell := range that.cells {
		that.cell = cell.Layout(inner)
	}

	return that.size
}

func (that *Grid) Paint(canvas Canvas, state *AppState) {
	for i, cell := range that.cells {
		origin := that.CellRect(i).Origin()

		canvas.Push()
		canvas.Translate(origin.X, origin.Y)
		cell.Paint(canvas, state)
		canvas.Pop()
	}

	size := that.size.Width
	third := size / 3

	if length := size * gridLineScale * that.intro.Value(); length > 0 {
		offset := (size - length) / 2
		width := size * gridLineWidth

		for _, at := range []float64{third, third * 2} {
			canvas.StrokeLine(Segment{From: Point{X: offset, Y: at}, To: Point{X: offset + length, Y: at}}, gridLineColor, width)
			canvas.StrokeLine(Segment{From: Point{X: at, Y: offset}, To: Point{X: at, Y: offset + length}}, gridLineColor, width)
		}
	}

	if value := that.outcome.Value(); value > 0 {
		canvas.StrokeLine(winSegment(that.outcome.Data(), size, value), winLineColor, size*winLineWidth)
	}
}

// winSegment - the stroke across the winning line, value scales its length.
func winSegment(line entity.Line, size, value float64) Segment {
	if !line.Valid() {
		// the engine only produces lines 0..7
		panic(fmt.Errorf("%w: %d", apperror.ErrInvalidLine, line))
	}

	third := size / 3
	length := size * winLineScale * value
	offset := (size - length) / 2

	switch {
	case line <= entity.LineRow2:
		y := third*float64(line) + third/2
		return Segment{From: Point{X: offset, Y: y}, To: Point{X: offset + length, Y: y}}
	case line <= entity.LineCol2:
		x := third*float64(line-entity.LineCol0) + third/2
		return Segment{From: Point{X: x, Y: offset}, To: Point{X: x, Y: offset + length}}
	case line == entity.LineMainDiagonal:
		return Segment{From: Point{X: offset, Y: offset}, To: Point{X: offset + length, Y: offset + length}}
	default:
		return Segment{From: Point{X: offset + length, Y: offset}, To: Point{X: offset, Y: offset + length}}
	}
}
