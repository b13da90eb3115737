// Package biquad provides second-order-section (biquad) runtime primitives for
// cascaded IIR filtering.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded with
// [Chain], which can run either with its own delay lines (single channel) or
// against an external multi-channel [State] tensor so that one coefficient set
// serves several independent channels.
//
// [SteadyState] and [SeedState] compute initial conditions that make a cascade
// start as if it had already been running on a constant input, suppressing
// the startup transient of a freshly initialized filter.
//
// Coefficient design lives in dsp/filter/design.
package biquad
