package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
)

// GameController - owns the application state and the widget tree. Every call
// is one dispatch turn; the controller is not safe for concurrent use, the host
// serializes events.
type GameController struct {
	logger *slog.Logger

	root  widget.Widget
	state widget.AppState
	host  widget.Host
	size  widget.Size

	pointer    widget.Point
	hasPointer bool
}

func NewGameController(logger *slog.Logger, root widget.Widget, game entity.Game) *GameController {
	return &GameController{
		logger: logger.With("component", "game-controller"),
		root:   root,
		state:  widget.AppState{Game: game},
	}
}

// Start - attaches the widget tree, call once after the first Resize.
func (that *GameController) Start() {
	that.logger.Info("game started", "first", that.state.Game.Actor().String())
	that.root.Lifecycle(that.ctx(), &that.state)
}

// Resize - lays the tree out in a width x height area and returns the size it took.
func (that *GameController) Resize(width, height float64) widget.Size {
	that.size = that.root.Layout(widget.Constraints{Max: widget.Size{Width: width, Height: height}})
	that.logger.Debug("layout", "width", that.size.Width, "height", that.size.Height)

	return that.size
}

// Dispatch - delivers one event and runs the update pass if the state changed.
func (that *GameController) Dispatch(event widget.Event) {
	switch ev := event.(type) {
	case widget.MouseDown:
		that.pointer, that.hasPointer = ev.Pos, true
	case widget.MouseMove:
		that.pointer, that.hasPointer = ev.Pos, true
	}

	that.dispatch(event)
}

// Leave - the pointer left the surface.
func (that *GameController) Leave() {
	that.hasPointer = false
	that.dispatch(widget.MouseMove{Pos: that.pointer})
}

func (that *GameController) dispatch(event widget.Event) {
	old := that.state
	ctx := that.ctx()

	that.root.Event(ctx, event, &that.state)

	if old != that.state {
		that.root.Update(ctx, &old, &that.state)
		that.logTransition(&old.Game, &that.state.Game)
	}
}

func (that *GameController) Paint(canvas widget.Canvas) {
	that.root.Paint(canvas, &that.state)
}

// TakeRequests - what the last dispatches asked of the host.
func (that *GameController) TakeRequests() widget.Requests {
	return that.host.Take()
}

// Game - copy of the current game.
func (that *GameController) Game() entity.Game {
	return that.state.Game
}

func (that *GameController) Size() widget.Size {
	return that.size
}

func (that *GameController) ctx() *widget.Ctx {
	return widget.NewCtx(&that.host, that.size, that.pointer, that.hasPointer)
}

func (that *GameController) logTransition(old, game *entity.Game) {
	log := that.logger.With("method", "Dispatch")

	for i := range entity.BoardSize {
		if mark := game.Get(i); mark != old.Get(i) && mark != entity.MarkNone {
			log.Debug("move", "cell", i, "mark", mark.String())
		}
	}

	switch outcome, done := game.Outcome(); {
	case done && !old.Done():
		log.Info("game won", "winner", outcome.Winner.String(), "line", outcome.Line)
	case game.Draw() && !old.Draw():
		log.Info("game drawn")
	case (old.Done() || old.Draw()) && !done && !game.Draw():
		log.Info("game restarted", "first", game.Actor().String())
	}
}
