package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
)

const (
	defaultFrameStep = 16 * time.Millisecond
	maxFrames        = 10_000
)

type controller interface {
	Start()
	Resize(width, height float64) widget.Size
	Dispatch(event widget.Event)
	Paint(canvas widget.Canvas)
	TakeRequests() widget.Requests
	Game() entity.Game
}

type frameCanvas interface {
	widget.Canvas

	Width() int
	Height() int
	Clear(color widget.Color)
	Err() error
	SavePNG(path string) error
}

// Replay - plays a fixed list of moves without a terminal and saves the
// settled board after each of them as a PNG.
type Replay struct {
	logger     *slog.Logger
	controller controller
	canvas     frameCanvas

	dir       string
	frameStep time.Duration
}

func NewReplay(logger *slog.Logger, controller controller, canvas frameCanvas, dir string, frameStep time.Duration) *Replay {
	if frameStep <= 0 {
		frameStep = defaultFrameStep
	}

	return &Replay{
		logger:     logger.With("component", "replay"),
		controller: controller,
		canvas:     canvas,

		dir:       dir,
		frameStep: frameStep,
	}
}

// Run - plays moves (cell indexes) and returns the written frame paths. The
// first frame is the empty board. A decided game is restarted before the next
// move, the way the restart timer would.
func (that *Replay) Run(ctx context.Context, moves []int) ([]string, error) {
	log := that.logger.With("method", "Run")

	if err := os.MkdirAll(that.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create replay dir: %w", err)
	}

	side := float64(min(that.canvas.Width(), that.canvas.Height()))
	size := that.controller.Resize(side, side)
	that.controller.Start()

	timers, err := that.settle()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(moves)+1)

	path, err := that.save(len(paths))
	if err != nil {
		return nil, err
	}

	paths = append(paths, path)

	for i, move := range moves {
		if err = ctx.Err(); err != nil {
			return paths, fmt.Errorf("replay interrupted: %w", err)
		}

		if done, draw := that.decided(); (done || draw) && len(timers) > 0 {
			log.Info("restarting decided game", "move", i)

			for _, timer := range timers {
				that.controller.Dispatch(widget.TimerFired{Token: timer.Token})
			}

			if timers, err = that.settle(); err != nil {
				return paths, err
			}
		}

		if err = that.play(size, move); err != nil {
			return paths, fmt.Errorf("move %d: %w", i, err)
		}

		if timers, err = that.settle(); err != nil {
			return paths, err
		}

		if path, err = that.save(len(paths)); err != nil {
			return paths, err
		}

		paths = append(paths, path)
	}

	game := that.controller.Game()
	log.Info("replay finished", "frames", len(paths), "done", game.Done(), "draw", game.Draw())

	return paths, nil
}

func (that *Replay) play(size widget.Size, move int) error {
	if move < 0 || move >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d is off the board", apperror.ErrMoveRejected, move)
	}

	before := that.controller.Game()

	third := widget.Point{X: size.Width / 3, Y: size.Height / 3}
	pos := widget.Point{
		X: third.X*float64(move%3) + third.X/2,
		Y: third.Y*float64(move/3) + third.Y/2,
	}

	that.controller.Dispatch(widget.MouseMove{Pos: pos})
	that.controller.Dispatch(widget.MouseDown{Button: widget.ButtonLeft, Pos: pos})

	if after := that.controller.Game(); after == before {
		return fmt.Errorf("%w: cell %d", apperror.ErrMoveRejected, move)
	}

	that.logger.Debug("move played", "cell", move, "mark", before.Actor().String())

	return nil
}

// settle - feeds fixed frames until no widget asks for one, collecting timers.
func (that *Replay) settle() ([]widget.TimerRequest, error) {
	var timers []widget.TimerRequest

	requests := that.controller.TakeRequests()
	for range maxFrames {
		timers = append(timers, requests.Timers...)
		if !requests.AnimFrame {
			return timers, nil
		}

		that.controller.Dispatch(widget.AnimFrame{Interval: that.frameStep})
		requests = that.controller.TakeRequests()
	}

	return nil, fmt.Errorf("%w after %d frames", apperror.ErrAnimationStalled, maxFrames)
}

func (that *Replay) save(index int) (string, error) {
	that.canvas.Clear(widget.Background)
	that.controller.Paint(that.canvas)

	if err := that.canvas.Err(); err != nil {
		return "", fmt.Errorf("failed to paint frame %d: %w", index, err)
	}

	path := filepath.Join(that.dir, fmt.Sprintf("frame-%02d.png", index))
	if err := that.canvas.SavePNG(path); err != nil {
		return "", err
	}

	return path, nil
}

func (that *Replay) decided() (bool, bool) {
	game := that.controller.Game()

	return game.Done(), game.Draw()
}
