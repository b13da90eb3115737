// Package pipeline streams multi-channel sample blocks through an ordered
// list of IIR cascades while carrying filter state from one call to the next.
//
// A [Pipeline] is built once for a fixed channel count and sample rate.
// Cascades are appended with [Pipeline.AddFilter] (designed by a [Designer],
// Butterworth by default) or supplied directly as second-order sections with
// [Pipeline.AddSections]. Every call to [Pipeline.Filter] runs the cascades
// left to right over the block and keeps each cascade's final state, so
// filtering consecutive slices of a signal gives the same output as
// filtering the whole signal at once.
//
// State is created on the first Filter call. Each cascade is seeded with its
// unit-step steady state scaled by the first sample of every channel, which
// removes the start-up transient a zero-initialised IIR filter would show on
// a signal with a large offset. Seeding happens once; later blocks never
// re-seed.
//
// Blocks are samples-major matrices: rows are samples, columns are channels.
// Any value with Dims and At satisfies [Matrix], including gonum's
// *mat.Dense; nested rows are adapted with [Rows] and interleaved go-audio
// buffers with [FromAudio] or [Pipeline.FilterBuffer]. Channels-major data
// can be passed as a transposed view such as m.T(). Output is always a
// fresh samples-major *mat.Dense.
//
// A Pipeline is not safe for concurrent use. Run one instance per channel
// group, or serialise calls to Filter.
package pipeline
