package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
)

const (
	maxWaitDuration = 30 * time.Second

	// BoardSide - pixel side of the board laid out by Controller.
	BoardSide = 300.0
	// Frame - interval fed by Settle.
	Frame = 16 * time.Millisecond

	maxFrames = 1000
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Controller - a started controller over a fresh grid, laid out BoardSide square,
// with first to move in every game including restarts.
func (that *Suite) Controller(first entity.Mark, opts ...widget.GridOption) (*tictactoe.GameController, *widget.Grid) {
	that.Helper()

	opts = append([]widget.GridOption{widget.WithNewGame(func() entity.Game {
		return entity.NewGame(first)
	})}, opts...)

	grid := widget.NewGrid(opts...)
	controller := tictactoe.NewGameController(that.Logger, grid, entity.NewGame(first))
	controller.Resize(BoardSide, BoardSide)
	controller.Start()

	return controller, grid
}

// CellCenter - root coordinates of the center of the cell at index.
func CellCenter(index int) widget.Point {
	third := BoardSide / 3

	return widget.Point{
		X: third*float64(index%3) + third/2,
		Y: third*float64(index/3) + third/2,
	}
}

// Click - moves the pointer to the cell and presses the left button.
func Click(controller *tictactoe.GameController, index int) {
	pos := CellCenter(index)
	controller.Dispatch(widget.MouseMove{Pos: pos})
	controller.Dispatch(widget.MouseDown{Button: widget.ButtonLeft, Pos: pos})
}

// Settle - feeds frames while the tree asks for them and returns every timer
// requested on the way.
func (that *Suite) Settle(controller *tictactoe.GameController) []widget.TimerRequest {
	that.Helper()

	var timers []widget.TimerRequest

	requests := controller.TakeRequests()
	for range maxFrames {
		timers = append(timers, requests.Timers...)
		if !requests.AnimFrame {
			return timers
		}

		controller.Dispatch(widget.AnimFrame{Interval: Frame})
		requests = controller.TakeRequests()
	}

	that.Fatalf("animation did not settle after %d frames", maxFrames)

	return nil
}
