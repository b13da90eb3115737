package biquad

import (
	"errors"
	"fmt"
	"math"
	"sync"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/generic" // register generic kernel
)

// ErrInvalidSection is returned for section coefficients that cannot be
// normalized (a0 == 0) or contain NaN/Inf values.
var ErrInvalidSection = errors.New("biquad: invalid section coefficients")

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// FromSOS converts one second-order-section row laid out as
// [b0 b1 b2 a0 a1 a2] into normalized coefficients.
func FromSOS(row [6]float64) (Coefficients, error) {
	for i, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Coefficients{}, fmt.Errorf("%w: element %d is %v", ErrInvalidSection, i, v)
		}
	}

	a0 := row[3]
	if a0 == 0 {
		return Coefficients{}, fmt.Errorf("%w: leading denominator coefficient is zero", ErrInvalidSection)
	}

	return Coefficients{
		B0: row[0] / a0,
		B1: row[1] / a0,
		B2: row[2] / a0,
		A1: row[4] / a0,
		A2: row[5] / a0,
	}, nil
}

// SOS returns the section as a [b0 b1 b2 a0 a1 a2] row with a0 = 1.
func (c Coefficients) SOS() [6]float64 {
	return [6]float64{c.B0, c.B1, c.B2, 1, c.A1, c.A2}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section struct {
	Coefficients

	d0, d1 float64
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		B0: s.B0,
		B1: s.B1,
		B2: s.B2,
		A1: s.A1,
		A2: s.A2,
	}

	s.d0, s.d1 = processBlockImpl(coeffs, s.d0, s.d1, buf)
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
