package spectrum

import "github.com/cwbudde/algo-iir/dsp/window"

// Detrend selects the per-segment trend removal applied before windowing.
type Detrend int

const (
	// DetrendConstant subtracts the segment mean.
	DetrendConstant Detrend = iota
	// DetrendNone leaves segments untouched.
	DetrendNone
	// DetrendLinear subtracts the least-squares line through the segment.
	DetrendLinear
)

const defaultSegmentLength = 256

// Option configures a Welch estimate.
type Option func(*config)

type config struct {
	segment int
	overlap int
	fftSize int
	window  window.Type
	detrend Detrend
}

func defaultConfig() config {
	return config{
		segment: defaultSegmentLength,
		overlap: -1,
		window:  window.TypeHann,
		detrend: DetrendConstant,
	}
}

// WithSegmentLength sets the number of samples per segment (default 256,
// clamped to the signal length).
func WithSegmentLength(n int) Option {
	return func(c *config) {
		c.segment = n
	}
}

// WithOverlap sets the number of samples shared by consecutive segments.
// The default is half a segment.
func WithOverlap(n int) Option {
	return func(c *config) {
		c.overlap = n
	}
}

// WithFFTSize sets the zero-padded transform length. The default is the
// smallest power of two not below the segment length.
func WithFFTSize(n int) Option {
	return func(c *config) {
		c.fftSize = n
	}
}

// WithWindow selects the segment window. Windows are generated in periodic form.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithDetrend selects per-segment trend removal.
func WithDetrend(d Detrend) Option {
	return func(c *config) {
		c.detrend = d
	}
}
