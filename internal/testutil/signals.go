package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Tone is one sinusoidal component of a [Mixture].
type Tone struct {
	Freq      float64
	Amplitude float64
}

// Mixture describes a multi-channel test signal: the same tones on every
// channel, shifted by a per-channel bias, with optional seeded noise.
type Mixture struct {
	SampleRate float64
	Tones      []Tone
	Bias       []float64
	Noise      float64
	Seed       int64
}

// Matrix renders n samples of the mixture as a samples-by-channels matrix.
// The channel count is len(m.Bias).
func (m Mixture) Matrix(n int) *mat.Dense {
	channels := len(m.Bias)
	out := mat.NewDense(n, channels, nil)

	var rng *rand.Rand
	if m.Noise != 0 {
		rng = rand.New(rand.NewSource(m.Seed))
	}

	for i := range n {
		v := 0.0
		for _, tone := range m.Tones {
			v += tone.Amplitude * math.Sin(2*math.Pi*tone.Freq*float64(i)/m.SampleRate)
		}

		for c, bias := range m.Bias {
			s := v + bias
			if rng != nil {
				s += m.Noise * rng.NormFloat64()
			}
			out.Set(i, c, s)
		}
	}

	return out
}

// Rows renders n samples of the mixture as nested per-sample rows.
func (m Mixture) Rows(n int) [][]float64 {
	dense := m.Matrix(n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, dense)
	}
	return rows
}

// Column copies channel c of a samples-by-channels matrix.
func Column(m mat.Matrix, c int) []float64 {
	return mat.Col(nil, c, m)
}
