// Package anim provides eased timers advanced by frame intervals.
//
// A timer does not own a clock: the owner feeds it the interval reported by
// each animation frame and asks for another frame until the timer is finished.
package anim

import "time"

// Animation - forward-only timer carrying a payload.
type Animation[T any] struct {
	data     T
	curve    Curve
	duration time.Duration
	elapsed  time.Duration
	value    float64
}

func New[T any](data T, curve Curve, duration time.Duration) *Animation[T] {
	return &Animation[T]{
		data:     data,
		curve:    curve,
		duration: duration,
	}
}

// Advance - moves the timer forward by interval. No-op once finished.
func (that *Animation[T]) Advance(interval time.Duration) {
	if that.Finished() {
		return
	}

	that.elapsed += interval
	that.value = that.curve.Ease(0, 1, progress(that.elapsed, that.duration))
}

// Value - eased output in [0, 1].
func (that *Animation[T]) Value() float64 {
	return that.value
}

func (that *Animation[T]) Data() T {
	return that.data
}

func (that *Animation[T]) SetData(data T) {
	that.data = data
}

func (that *Animation[T]) Starting() bool {
	return that.value <= 0 && that.elapsed == 0
}

func (that *Animation[T]) Finished() bool {
	return that.value >= 1
}

// Reversible - timer that can change direction at any point. Both directions
// share the elapsed clock, so reversing mid-flight continues from the current
// position.
type Reversible[T any] struct {
	data     T
	curve    Curve
	duration time.Duration
	elapsed  time.Duration
	value    float64
	reverse  bool
}

func NewReversible[T any](data T, curve Curve, duration time.Duration) *Reversible[T] {
	return &Reversible[T]{
		data:     data,
		curve:    curve,
		duration: duration,
	}
}

// Reverse - flips the direction without touching elapsed time.
func (that *Reversible[T]) Reverse() {
	that.reverse = !that.reverse
}

func (that *Reversible[T]) IsReverse() bool {
	return that.reverse
}

// Advance - moves the timer by interval in the current direction. Elapsed time
// stays within [0, duration].
func (that *Reversible[T]) Advance(interval time.Duration) {
	if that.reverse {
		that.elapsed = max(that.elapsed-interval, 0)
		that.value = that.curve.Ease(1, 0, 1-progress(that.elapsed, that.duration))
		return
	}

	that.elapsed = min(that.elapsed+interval, that.duration)
	that.value = that.curve.Ease(0, 1, progress(that.elapsed, that.duration))
}

func (that *Reversible[T]) Value() float64 {
	return that.value
}

func (that *Reversible[T]) Data() T {
	return that.data
}

func (that *Reversible[T]) SetData(data T) {
	that.data = data
}

// Starting - at the origin of the current direction.
func (that *Reversible[T]) Starting() bool {
	if that.reverse {
		return that.value >= 1 && that.elapsed >= that.duration
	}

	return that.value <= 0 && that.elapsed <= 0
}

// Finished - at the end of the current direction.
func (that *Reversible[T]) Finished() bool {
	if that.reverse {
		return that.value <= 0 && that.elapsed <= 0
	}

	return that.value >= 1 && that.elapsed >= that.duration
}

func progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}

	return float64(elapsed) / float64(duration)
}
