package spectrum

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-iir/dsp/window"
)

// Welch estimates the one-sided power spectral density of x sampled at
// sampleRate using Welch's averaged periodogram method.
//
// Each segment is detrended, multiplied by a periodic window and zero-padded
// to the FFT size. Periodograms are averaged and scaled by
// 1/(sampleRate * sum(w^2)); every bin except DC and Nyquist is doubled to
// fold in the negative frequencies. Signals shorter than the segment length
// are analysed as a single segment.
func Welch(x []float64, sampleRate float64, opts ...Option) (*PSD, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.resolve(len(x)); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan of size %d: %w", cfg.fftSize, err)
	}

	win := window.Generate(cfg.window, cfg.segment, window.WithPeriodic())
	energy := window.Energy(win)

	if energy == 0 {
		return nil, fmt.Errorf("%w: window has zero energy", ErrInvalidSegment)
	}

	bins := cfg.fftSize/2 + 1
	acc := make([]float64, bins)
	pow := make([]float64, bins)
	seg := make([]float64, cfg.segment)
	in := make([]complex128, cfg.fftSize)
	out := make([]complex128, cfg.fftSize)

	step := cfg.segment - cfg.overlap
	count := (len(x)-cfg.segment)/step + 1

	for s := range count {
		copy(seg, x[s*step:s*step+cfg.segment])
		detrend(seg, cfg.detrend)
		vecmath.MulBlockInPlace(seg, win)

		for i := range in {
			if i < len(seg) {
				in[i] = complex(seg[i], 0)
			} else {
				in[i] = 0
			}
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("spectrum: segment %d: %w", s, err)
		}

		PowerInto(pow, out[:bins])
		vecmath.AddBlockInPlace(acc, pow)
	}

	vecmath.ScaleBlockInPlace(acc, 1/(sampleRate*energy*float64(count)))

	last := bins - 1
	if cfg.fftSize%2 == 1 {
		last = bins
	}

	if last > 1 {
		vecmath.ScaleBlockInPlace(acc[1:last], 2)
	}

	freqs := make([]float64, bins)
	df := sampleRate / float64(cfg.fftSize)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}

	return &PSD{
		Freqs:      freqs,
		Power:      acc,
		SampleRate: sampleRate,
		FFTSize:    cfg.fftSize,
		Segments:   count,
	}, nil
}

func (c *config) resolve(n int) error {
	if c.segment <= 0 {
		return fmt.Errorf("%w: segment length %d", ErrInvalidSegment, c.segment)
	}

	if c.segment > n {
		c.segment = n
	}

	if c.overlap < 0 {
		c.overlap = c.segment / 2
	}

	if c.overlap >= c.segment {
		return fmt.Errorf("%w: overlap %d must be below segment length %d", ErrInvalidSegment, c.overlap, c.segment)
	}

	if c.fftSize == 0 {
		c.fftSize = nextPowerOfTwo(c.segment)
	}

	if c.fftSize < c.segment {
		return fmt.Errorf("%w: fft size %d below segment length %d", ErrInvalidSegment, c.fftSize, c.segment)
	}

	return nil
}

func detrend(seg []float64, mode Detrend) {
	n := float64(len(seg))

	switch mode {
	case DetrendConstant:
		mean := vecmath.Sum(seg) / n
		for i := range seg {
			seg[i] -= mean
		}
	case DetrendLinear:
		if len(seg) < 2 {
			seg[0] = 0
			return
		}

		// Least-squares fit against t = i - (n-1)/2, whose mean is zero.
		mid := (n - 1) / 2
		mean := vecmath.Sum(seg) / n

		var num, den float64
		for i, v := range seg {
			t := float64(i) - mid
			num += t * v
			den += t * t
		}

		slope := num / den
		for i := range seg {
			seg[i] -= mean + slope*(float64(i)-mid)
		}
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
