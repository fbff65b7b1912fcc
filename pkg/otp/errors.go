package otp

import "errors"

var (
	// ErrRandomSource is returned when the secure entropy source is
	// unavailable or fails to produce enough data.
	ErrRandomSource = errors.New("random source unavailable")
	// ErrLengthMismatch is returned when pad and data have different lengths.
	ErrLengthMismatch = errors.New("pad and data lengths differ")
	// ErrEmptyBuffer is returned when the pad or the data is zero-length.
	ErrEmptyBuffer = errors.New("empty buffer")
)
