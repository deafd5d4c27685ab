package apperror

import "errors"

var (
	ErrInvalidLine      = errors.New("invalid line identifier")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrMoveRejected     = errors.New("move rejected")
	ErrAnimationStalled = errors.New("animation did not settle")
	ErrEmptyCanvas      = errors.New("canvas has no area")
)
