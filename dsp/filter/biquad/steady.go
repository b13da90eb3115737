package biquad

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a section has no steady state because its
// denominator vanishes at DC (a pole at z = 1).
var ErrSingular = errors.New("biquad: steady state undefined (pole at z=1)")

// StepState returns the delay-line contents [d0, d1] the section settles to
// after an infinitely long unit step input.
//
// It solves (I - Aᵀ)·zi = B where A is the companion matrix of the
// denominator and B = b[1:] - a[1:]·b0.
func (c *Coefficients) StepState() ([2]float64, error) {
	if 1+c.A1+c.A2 == 0 {
		return [2]float64{}, ErrSingular
	}

	iMinusAT := mat.NewDense(2, 2, []float64{
		1 + c.A1, -1,
		c.A2, 1,
	})
	b := mat.NewVecDense(2, []float64{
		c.B1 - c.A1*c.B0,
		c.B2 - c.A2*c.B0,
	})

	var zi mat.VecDense
	if err := zi.SolveVec(iMinusAT, b); err != nil {
		return [2]float64{}, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	return [2]float64{zi.AtVec(0), zi.AtVec(1)}, nil
}

// SteadyState returns the per-section delay-line state a cascade settles to
// for a unit step input. Each section sees the DC gain of all sections before
// it, so section i's step state is scaled by the product of the preceding
// sections' DC gains.
func SteadyState(coeffs []Coefficients) ([][2]float64, error) {
	zi := make([][2]float64, len(coeffs))
	scale := 1.0

	for i := range coeffs {
		st, err := coeffs[i].StepState()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}

		zi[i] = [2]float64{scale * st[0], scale * st[1]}
		scale *= coeffs[i].DCGain()
	}

	return zi, nil
}

// SeedState broadcasts a unit steady state (see [SteadyState]) across
// channels, scaling each channel's copy by that channel's level. The result
// makes a cascade behave as if every channel had been held at its level
// forever.
func SeedState(unit [][2]float64, levels []float64) *State {
	st := NewState(len(unit), len(levels))
	for i := range unit {
		for slot := range 2 {
			vecmath.ScaleBlock(st.Slot(i, slot), levels, unit[i][slot])
		}
	}

	return st
}
