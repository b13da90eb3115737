package spectrum

import "errors"

var (
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
	// ErrInvalidSegment is returned when segment, overlap and FFT size are inconsistent.
	ErrInvalidSegment = errors.New("spectrum: invalid segment configuration")
	// ErrEmptyInput is returned when the signal has no samples.
	ErrEmptyInput = errors.New("spectrum: empty input")
)
