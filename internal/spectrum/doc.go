// Package spectrum estimates power spectral densities of real signals.
//
// [Welch] splits a signal into overlapping segments, removes each segment's
// trend, applies a window, transforms it with algo-fft and averages the
// one-sided periodograms. The result is a [PSD] in units of power per Hz,
// with helpers for reading band power and peaks.
//
// The package backs the attenuation checks in the pipeline tests and is not
// part of the public API.
package spectrum
