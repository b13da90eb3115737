package pipeline

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// Designer turns filter parameters into a cascade of second-order sections.
// It owns parameter validation, including the Nyquist bound; the pipeline
// wraps any failure in a *DesignError.
type Designer interface {
	Design(order int, cutoff design.Cutoff, kind design.Kind, sampleRate float64) ([]biquad.Coefficients, error)
}

// DesignerFunc adapts a plain function to [Designer].
type DesignerFunc func(order int, cutoff design.Cutoff, kind design.Kind, sampleRate float64) ([]biquad.Coefficients, error)

// Design calls f.
func (f DesignerFunc) Design(order int, cutoff design.Cutoff, kind design.Kind, sampleRate float64) ([]biquad.Coefficients, error) {
	return f(order, cutoff, kind, sampleRate)
}

// Butterworth is the default designer.
var Butterworth Designer = DesignerFunc(design.Butterworth)
