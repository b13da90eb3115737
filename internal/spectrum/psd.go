package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PSD is a one-sided power spectral density estimate.
type PSD struct {
	// Freqs holds the bin centre frequencies in Hz, from 0 to Nyquist.
	Freqs []float64
	// Power holds the density in power per Hz for each bin.
	Power []float64

	SampleRate float64
	FFTSize    int
	Segments   int
}

// Resolution returns the bin spacing in Hz.
func (p *PSD) Resolution() float64 {
	return p.SampleRate / float64(p.FFTSize)
}

// Bin returns the index of the bin nearest to freq, clamped to the valid range.
func (p *PSD) Bin(freq float64) int {
	k := int(math.Round(freq / p.Resolution()))
	return max(0, min(k, len(p.Power)-1))
}

// BandPower integrates the density over bins whose centre lies in [lo, hi].
func (p *PSD) BandPower(lo, hi float64) float64 {
	from, to := p.band(lo, hi)
	if from >= to {
		return 0
	}

	return floats.Sum(p.Power[from:to]) * p.Resolution()
}

// Peak returns the frequency and density of the largest bin in [lo, hi].
// It returns (0, 0) when no bin falls inside the band.
func (p *PSD) Peak(lo, hi float64) (freq, power float64) {
	from, to := p.band(lo, hi)
	if from >= to {
		return 0, 0
	}

	k := from + floats.MaxIdx(p.Power[from:to])
	return p.Freqs[k], p.Power[k]
}

func (p *PSD) band(lo, hi float64) (from, to int) {
	if hi < lo {
		return 0, 0
	}

	res := p.Resolution()
	from = max(0, int(math.Ceil(lo/res-1e-9)))
	to = min(len(p.Power), int(math.Floor(hi/res+1e-9))+1)
	return from, to
}

// DB converts a power ratio to decibels with a -300 dB floor.
func DB(power float64) float64 {
	if power <= 1e-30 {
		return -300
	}

	return 10 * math.Log10(power)
}
