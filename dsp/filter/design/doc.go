// Package design provides the Butterworth IIR designer that feeds cascaded
// biquad pipelines.
//
// [Butterworth] turns (order, cutoff, kind, sample rate) into a cascade of
// second-order sections suitable for dsp/filter/biquad. The design runs in
// zero-pole-gain form: an analog Butterworth prototype is frequency
// transformed (lowpass, highpass, bandpass or bandstop), mapped to the z-plane
// with the bilinear transform using prewarped band edges, and finally factored
// into sections by pairing each pole with its nearest zero. Working with poles
// and zeros instead of expanded polynomials keeps high orders numerically
// stable.
//
// Lowpass and highpass designs of order N yield ceil(N/2) sections; bandpass
// and bandstop designs of order N have 2N poles and yield N sections.
package design
