package widget

import "time"

// TimerRequest - a one-shot timer the host must arm.
type TimerRequest struct {
	Token TimerToken
	Delay time.Duration
}

// Requests - what widgets asked of the host during dispatch.
type Requests struct {
	Paint     bool
	AnimFrame bool
	Timers    []TimerRequest
}

// Host - collects requests across dispatch turns and issues timer tokens.
type Host struct {
	pending   Requests
	lastToken TimerToken
}

// Take - returns the pending requests and clears them.
func (that *Host) Take() Requests {
	requests := that.pending
	that.pending = Requests{}

	return requests
}

// Ctx - handle given to a widget for one call. It must not be retained.
type Ctx struct {
	host       *Host
	bounds     Rect
	pointer    Point
	hasPointer bool
}

// NewCtx - context for the root widget occupying size, pointer in root coordinates.
func NewCtx(host *Host, size Size, pointer Point, hasPointer bool) *Ctx {
	return &Ctx{
		host:       host,
		bounds:     Rect{Width: size.Width, Height: size.Height},
		pointer:    pointer,
		hasPointer: hasPointer,
	}
}

// Child - context for a child placed at rect, relative to this widget.
func (that *Ctx) Child(rect Rect) *Ctx {
	return &Ctx{
		host:       that.host,
		bounds:     rect.Offset(that.bounds.Origin()),
		pointer:    that.pointer,
		hasPointer: that.hasPointer,
	}
}

// IsHot - the pointer is over this widget.
func (that *Ctx) IsHot() bool {
	return that.hasPointer && that.bounds.Contains(that.pointer)
}

func (that *Ctx) Size() Size {
	return Size{Width: that.bounds.Width, Height: that.bounds.Height}
}

func (that *Ctx) RequestPaint() {
	that.host.pending.Paint = true
}

func (that *Ctx) RequestAnimFrame() {
	that.host.pending.AnimFrame = true
	that.host.pending.Paint = true
}

// RequestTimer - asks the host for a TimerFired carrying the returned token
// after delay.
func (that *Ctx) RequestTimer(delay time.Duration) TimerToken {
	that.host.lastToken++
	token := that.host.lastToken
	that.host.pending.Timers = append(that.host.pending.Timers, TimerRequest{Token: token, Delay: delay})

	return token
}
