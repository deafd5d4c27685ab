// Package terminal hosts the widget tree on a tcell screen. Every terminal
// cell shows two vertically stacked pixels of the rasterized board.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/render"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
)

const halfBlock = '▀'

type controller interface {
	Start()
	Resize(width, height float64) widget.Size
	Dispatch(event widget.Event)
	Leave()
	Paint(canvas widget.Canvas)
	TakeRequests() widget.Requests
}

type Server struct {
	logger     *slog.Logger
	screen     tcell.Screen
	controller controller
	canvas     *render.Canvas

	frameInterval time.Duration
	lastFrame     time.Time
	animating     bool

	// board placement in terminal cells, side in pixels
	x0, y0, side int

	pressed tcell.ButtonMask
	inside  bool

	timers chan widget.TimerToken
	// armed timers by token, removed once fired
	pending map[widget.TimerToken]*time.Timer
}

// New - server over an initialized screen. Start takes ownership of it.
func New(logger *slog.Logger, screen tcell.Screen, controller controller, frameInterval time.Duration) *Server {
	return &Server{
		logger:        logger.With("component", "terminal"),
		screen:        screen,
		controller:    controller,
		frameInterval: frameInterval,
		timers:        make(chan widget.TimerToken, 1),
		pending:       make(map[widget.TimerToken]*time.Timer),
	}
}

// Start - runs the event loop until ctx is done or the user quits.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.screen.EnableMouse(tcell.MouseMotionEvents)
	that.screen.HideCursor()

	defer func() {
		for _, timer := range that.pending {
			timer.Stop()
		}

		that.screen.Fini()

		if that.canvas != nil {
			if err := that.canvas.Close(); err != nil {
				log.Error("could not close canvas", "error", err)
			}
		}
	}()

	events := make(chan tcell.Event)
	go that.poll(ctx, events)

	if err := that.resize(that.screen.Size()); err != nil {
		return err
	}

	that.controller.Start()
	that.apply(ctx, that.controller.TakeRequests())
	that.draw()

	ticker := time.NewTicker(that.frameInterval)
	defer ticker.Stop()

	log.Info("terminal started", "side", that.side)

	for {
		select {
		case <-ctx.Done():
			log.Info("terminal context canceled")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			quit, err := that.handle(ev)
			if err != nil {
				return err
			}

			if quit {
				log.Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			if !that.animating {
				continue
			}

			that.frame(now)
		case token := <-that.timers:
			delete(that.pending, token)
			that.controller.Dispatch(widget.TimerFired{Token: token})
		}

		that.apply(ctx, that.controller.TakeRequests())
	}
}

func (that *Server) poll(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)

	for {
		ev := that.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (that *Server) handle(event tcell.Event) (bool, error) {
	switch ev := event.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			return ev.Rune() == 'q', nil
		default:
			return false, nil
		}
	case *tcell.EventResize:
		if err := that.resize(that.screen.Size()); err != nil {
			return false, err
		}

		that.draw()
	case *tcell.EventMouse:
		that.mouse(ev)
	}

	return false, nil
}

func (that *Server) mouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	pos, inside := that.toCanvas(col, row)

	switch {
	case inside:
		that.inside = true
		that.controller.Dispatch(widget.MouseMove{Pos: pos})
	case that.inside:
		that.inside = false
		that.controller.Leave()
	}

	buttons := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	pressed := buttons &^ that.pressed
	that.pressed = buttons

	if !inside {
		return
	}

	for _, press := range []struct {
		mask   tcell.ButtonMask
		button widget.MouseButton
	}{
		{tcell.ButtonPrimary, widget.ButtonLeft},
		{tcell.ButtonMiddle, widget.ButtonMiddle},
		{tcell.ButtonSecondary, widget.ButtonRight},
	} {
		if pressed&press.mask != 0 {
			that.controller.Dispatch(widget.MouseDown{Button: press.button, Pos: pos})
		}
	}
}

func (that *Server) frame(now time.Time) {
	interval := now.Sub(that.lastFrame)
	that.lastFrame = now
	that.animating = false

	that.controller.Dispatch(widget.AnimFrame{Interval: interval})
}

func (that *Server) apply(ctx context.Context, requests widget.Requests) {
	if requests.AnimFrame && !that.animating {
		that.animating = true

		if time.Since(that.lastFrame) > 2*that.frameInterval {
			that.lastFrame = time.Now()
		}
	}

	for _, request := range requests.Timers {
		token := request.Token

		that.pending[token] = time.AfterFunc(request.Delay, func() {
			select {
			case that.timers <- token:
			case <-ctx.Done():
			}
		})

		that.logger.Debug("timer armed", "token", token, "delay", request.Delay)
	}

	if requests.Paint {
		that.draw()
	}
}

// resize - the board is the largest square of pixels that fits, centered.
func (that *Server) resize(width, height int) error {
	that.side = min(width, height*2)
	that.x0 = (width - that.side) / 2
	that.y0 = (height - (that.side+1)/2) / 2

	if that.side <= 0 {
		return nil
	}

	if that.canvas == nil {
		canvas, err := render.NewCanvas(that.side, that.side)
		if err != nil {
			return fmt.Errorf("failed to create canvas: %w", err)
		}

		that.canvas = canvas
	} else if err := that.canvas.Resize(that.side, that.side); err != nil {
		return err
	}

	that.controller.Resize(float64(that.side), float64(that.side))

	return nil
}

// toCanvas - pixel at the center of a terminal cell, false when off the board.
func (that *Server) toCanvas(col, row int) (widget.Point, bool) {
	x := col - that.x0
	y := (row - that.y0) * 2

	pos := widget.Point{X: float64(x) + 0.5, Y: float64(y) + 1}

	return pos, x >= 0 && y >= 0 && x < that.side && y < that.side
}

func (that *Server) draw() {
	background := tcell.StyleDefault.Background(toColor(widget.Background))
	that.screen.Fill(' ', background)

	if that.canvas == nil || that.side <= 0 {
		that.screen.Show()
		return
	}

	that.canvas.Clear(widget.Background)
	that.controller.Paint(that.canvas)

	if err := that.canvas.Err(); err != nil {
		that.logger.Warn("paint failed", "error", err)
	}

	img := that.canvas.Image()
	bounds := img.Bounds()

	for y := 0; y < that.side; y += 2 {
		for x := range that.side {
			top := rgb(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			bottom := top

			if y+1 < that.side {
				bottom = rgb(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			that.screen.SetContent(that.x0+x, that.y0+y/2, halfBlock, nil, style)
		}
	}

	that.screen.Show()
}

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()

	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func toColor(c widget.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255+0.5), int32(c.G*255+0.5), int32(c.B*255+0.5))
}
