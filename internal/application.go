package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/render"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gg.SetLogger(logger.With("component", "rasterizer"))

	if conf.Replay.Enabled() {
		return runReplay(ctx, logger, conf)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create terminal screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init terminal screen: %w", err)
	}

	grid := widget.NewGrid(widget.WithRestartDelay(conf.RestartDelay))
	gameController := tictactoe.NewGameController(logger, grid, entity.NewGame(entity.MarkNone))

	// run terminal UI
	uiErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal UI", "frame-rate", conf.FrameRate)
		server := terminal.New(logger, screen, gameController, conf.FrameInterval())
		uiErrCh <- server.Start(ctx)
	}()

	select {
	case err = <-uiErrCh:
		if err != nil {
			return fmt.Errorf("terminal UI error: %w", err)
		}

		log.Info("Terminal UI closed")

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		// the UI restores the terminal before returning
		return <-uiErrCh
	}
}

func runReplay(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	first := entity.ParseMark(conf.Replay.First)
	if first == entity.MarkNone {
		return fmt.Errorf("%w: replay first %q", apperror.ErrInvalidMark, conf.Replay.First)
	}

	canvas, err := render.NewCanvas(conf.Replay.Size, conf.Replay.Size)
	if err != nil {
		return fmt.Errorf("could not create replay canvas: %w", err)
	}

	defer func() {
		if err = canvas.Close(); err != nil {
			log.Error("could not close replay canvas", "error", err)
		}
	}()

	newGame := func() entity.Game {
		return entity.NewGame(first)
	}

	grid := widget.NewGrid(widget.WithRestartDelay(conf.RestartDelay), widget.WithNewGame(newGame))
	gameController := tictactoe.NewGameController(logger, grid, newGame())
	replay := usecase.NewReplay(logger, gameController, canvas, conf.Replay.Dir, conf.Replay.FrameStep)

	paths, err := replay.Run(ctx, conf.Replay.Moves)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	log.Info("Replay written", "dir", conf.Replay.Dir, "frames", len(paths))

	return nil
}
