package widget

import "time"

// Event - input delivered by the host. The set is closed.
type Event interface {
	event()
}

type MouseButton uint8

const (
	ButtonLeft MouseButton = iota + 1
	ButtonMiddle
	ButtonRight
)

// MouseDown - a button was pressed at Pos (root coordinates).
type MouseDown struct {
	Button MouseButton
	Pos    Point
}

// MouseMove - the pointer moved to Pos (root coordinates).
type MouseMove struct {
	Pos Point
}

// AnimFrame - a frame requested by the previous dispatch. Interval is the time
// since the last frame, zero for the first one.
type AnimFrame struct {
	Interval time.Duration
}

// TimerFired - a one-shot timer armed with RequestTimer expired.
type TimerFired struct {
	Token TimerToken
}

func (MouseDown) event()  {}
func (MouseMove) event()  {}
func (AnimFrame) event()  {}
func (TimerFired) event() {}

// TimerToken - identity of an armed one-shot timer. NoTimer is never issued.
type TimerToken uint64

const NoTimer TimerToken = 0
