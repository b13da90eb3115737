package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrDesign matches every *DesignError.
	ErrDesign = errors.New("pipeline: design error")
	// ErrShape matches every *ShapeError.
	ErrShape = errors.New("pipeline: shape error")
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("pipeline: configuration error")
	// ErrStarted is wrapped by the *ConfigurationError returned when a cascade
	// is added after streaming started.
	ErrStarted = errors.New("streaming already started")
)

// DesignError reports a filter that could not be turned into usable
// sections: the designer rejected the parameters, or directly supplied
// sections are malformed or unstable.
type DesignError struct {
	Filter FilterInfo
	Err    error
}

func (e *DesignError) Error() string {
	return fmt.Sprintf("pipeline: design %s: %v", e.Filter.describe(), e.Err)
}

func (e *DesignError) Unwrap() error { return e.Err }

func (e *DesignError) Is(target error) bool { return target == ErrDesign }

// ShapeError reports a block that is not a two-dimensional samples-by-channels
// matrix with the expected channel count.
type ShapeError struct {
	// Dims is the dimensionality of the rejected input.
	Dims     int
	Samples  int
	Channels int
	// Want is the expected channel count, or 0 when the dimensionality or
	// layout was the problem.
	Want   int
	Reason string
}

func (e *ShapeError) Error() string {
	switch {
	case e.Reason != "":
		return "pipeline: shape error: " + e.Reason
	case e.Dims != 2:
		return fmt.Sprintf("pipeline: shape error: input must be two-dimensional, got %d dimension(s)", e.Dims)
	case e.Want > 0:
		return fmt.Sprintf("pipeline: shape error: got %d channel(s), want %d", e.Channels, e.Want)
	default:
		return fmt.Sprintf("pipeline: shape error: %d sample(s) by %d channel(s)", e.Samples, e.Channels)
	}
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// ConfigurationError reports an invalid construction argument or a
// structural change the pipeline does not allow in its current state.
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pipeline: configuration error: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("pipeline: configuration error: %s must be > 0, got %v", e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
