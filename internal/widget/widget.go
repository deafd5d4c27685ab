// Package widget holds the board widgets: a Grid of nine Cells.
//
// Widgets never own the game. The controller passes its AppState by pointer
// into each call and keeps it between dispatch turns; widgets keep only their
// own animation state.
package widget

import "github.com/rocketscienceinc/tictactoe-desktop/internal/entity"

// AppState - state shared by every widget.
type AppState struct {
	Game entity.Game
}

// Widget - a node of the fixed widget tree.
type Widget interface {
	// Lifecycle - called once when the tree is attached to a host.
	Lifecycle(ctx *Ctx, state *AppState)
	// Event - handles one event, may mutate state.
	Event(ctx *Ctx, event Event, state *AppState)
	// Update - called after a dispatch that changed state.
	Update(ctx *Ctx, old, state *AppState)
	Layout(bc Constraints) Size
	Paint(canvas Canvas, state *AppState)
}

// Canvas - drawing surface. Coordinates are relative to the current origin.
type Canvas interface {
	// Push - saves the origin.
	Push()
	// Pop - restores the last pushed origin.
	Pop()
	Translate(dx, dy float64)

	FillRoundedRect(rect Rect, radius float64, color Color)
	StrokeLine(segment Segment, color Color, width float64)
	// StrokeArc - sweep in radians starting at start, clockwise on screen.
	StrokeArc(center Point, radius, start, sweep float64, color Color, width float64)
}

// Background - color the host clears to before painting.
var Background = Grey(41)
