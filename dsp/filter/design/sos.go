package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// realTol is the relative imaginary-part tolerance under which a root is
// treated as real.
const realTol = 100 * 2.220446049250313e-16

// Sections factors a digital ZPK into second-order sections.
//
// Poles are consumed closest-to-the-unit-circle first; each is paired with
// its conjugate (or the next real pole) and with the nearest remaining zeros.
// Sections are returned in reverse build order so the poles nearest the unit
// circle come last in the cascade, and the overall gain is folded into the
// numerator of the first section.
func (sys ZPK) Sections() ([]biquad.Coefficients, error) {
	if len(sys.Zeros) == 0 && len(sys.Poles) == 0 {
		return []biquad.Coefficients{{B0: sys.Gain}}, nil
	}

	z := append([]complex128(nil), sys.Zeros...)
	p := append([]complex128(nil), sys.Poles...)
	for len(z) < len(p) {
		z = append(z, 0)
	}
	for len(p) < len(z) {
		p = append(p, 0)
	}
	if len(p)%2 == 1 {
		z = append(z, 0)
		p = append(p, 0)
	}

	nSections := len(p) / 2

	zs, err := conjugateHalf(z)
	if err != nil {
		return nil, err
	}
	ps, err := conjugateHalf(p)
	if err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, nSections)
	for si := range sections {
		i1 := argMin(ps, func(r complex128) float64 { return math.Abs(1 - cmplx.Abs(r)) })
		p1 := ps[i1]
		ps = removeAt(ps, i1)

		var zeros, poles []complex128
		switch {
		case isReal(p1) && countReal(ps) == 0:
			// Last real pole: pair with the nearest real zero as a
			// first-order section.
			iz := nearestRoot(zs, p1, wantReal)
			if iz < 0 {
				return nil, fmt.Errorf("%w: no real zero for real pole %v", errUnpairedRoots, p1)
			}
			zeros = []complex128{zs[iz], 0}
			poles = []complex128{p1, 0}
			zs = removeAt(zs, iz)

		case len(ps)+1 == len(zs) && !isReal(p1) && countReal(ps) == 1 && countReal(zs) == 1:
			// One real pole and one real zero remain: this complex pole
			// must take a complex zero so they can pair up later.
			iz := nearestRoot(zs, p1, wantComplex)
			if iz < 0 {
				return nil, fmt.Errorf("%w: no complex zero for pole %v", errUnpairedRoots, p1)
			}
			zeros = []complex128{zs[iz], cmplx.Conj(zs[iz])}
			poles = []complex128{p1, cmplx.Conj(p1)}
			zs = removeAt(zs, iz)

		default:
			var p2 complex128
			if isReal(p1) {
				ip := -1
				best := math.Inf(1)
				for i, r := range ps {
					if !isReal(r) {
						continue
					}
					if d := math.Abs(cmplx.Abs(r) - 1); d < best {
						best, ip = d, i
					}
				}
				p2 = ps[ip]
				ps = removeAt(ps, ip)
			} else {
				p2 = cmplx.Conj(p1)
			}
			poles = []complex128{p1, p2}

			if len(zs) > 0 {
				iz := nearestRoot(zs, p1, wantAny)
				z1 := zs[iz]
				zs = removeAt(zs, iz)

				switch {
				case !isReal(z1):
					zeros = []complex128{z1, cmplx.Conj(z1)}
				case len(zs) > 0:
					iz2 := nearestRoot(zs, p1, wantReal)
					if iz2 < 0 {
						return nil, fmt.Errorf("%w: no real partner for zero %v", errUnpairedRoots, z1)
					}
					zeros = []complex128{z1, zs[iz2]}
					zs = removeAt(zs, iz2)
				default:
					zeros = []complex128{z1}
				}
			}
		}

		sections[si] = sectionFromRoots(zeros, poles)
	}

	for i, j := 0, len(sections)-1; i < j; i, j = i+1, j-1 {
		sections[i], sections[j] = sections[j], sections[i]
	}

	sections[0].B0 *= sys.Gain
	sections[0].B1 *= sys.Gain
	sections[0].B2 *= sys.Gain

	return sections, nil
}

// sectionFromRoots expands up to two zeros and exactly two poles into
// normalized biquad coefficients. Fewer than two zeros leave the leading
// numerator taps zero.
func sectionFromRoots(zeros, poles []complex128) biquad.Coefficients {
	b := expandRoots(zeros)
	a := expandRoots(poles)

	return biquad.Coefficients{
		B0: b[0] / a[0], B1: b[1] / a[0], B2: b[2] / a[0],
		A1: a[1] / a[0], A2: a[2] / a[0],
	}
}

// expandRoots returns the monic polynomial with the given (at most two)
// roots, right-aligned in three taps.
func expandRoots(roots []complex128) [3]float64 {
	switch len(roots) {
	case 0:
		return [3]float64{0, 0, 1}
	case 1:
		return [3]float64{0, 1, -real(roots[0])}
	default:
		r0, r1 := roots[0], roots[1]
		return [3]float64{1, -real(r0 + r1), real(r0 * r1)}
	}
}

// conjugateHalf keeps one representative per conjugate pair (the one with
// positive imaginary part) followed by the real roots, snapping near-real
// roots onto the real axis.
func conjugateHalf(roots []complex128) ([]complex128, error) {
	var cplx, reals []complex128
	upper, lower := 0, 0

	for _, r := range roots {
		switch {
		case math.Abs(imag(r)) <= realTol*cmplx.Abs(r):
			reals = append(reals, complex(real(r), 0))
		case imag(r) > 0:
			cplx = append(cplx, r)
			upper++
		default:
			lower++
		}
	}

	if upper != lower {
		return nil, fmt.Errorf("%w: %d upper vs %d lower half-plane roots", errUnpairedRoots, upper, lower)
	}

	return append(cplx, reals...), nil
}

type rootFilter int

const (
	wantAny rootFilter = iota
	wantReal
	wantComplex
)

// nearestRoot returns the index of the root closest to target that passes
// the filter, or -1.
func nearestRoot(roots []complex128, target complex128, filter rootFilter) int {
	idx := -1
	best := math.Inf(1)
	for i, r := range roots {
		if filter == wantReal && !isReal(r) || filter == wantComplex && isReal(r) {
			continue
		}
		if d := cmplx.Abs(r - target); d < best {
			best, idx = d, i
		}
	}
	return idx
}

func argMin(roots []complex128, key func(complex128) float64) int {
	idx := 0
	best := math.Inf(1)
	for i, r := range roots {
		if k := key(r); k < best {
			best, idx = k, i
		}
	}
	return idx
}

func removeAt(roots []complex128, i int) []complex128 {
	return append(roots[:i], roots[i+1:]...)
}

func isReal(r complex128) bool { return imag(r) == 0 }

func countReal(roots []complex128) int {
	n := 0
	for _, r := range roots {
		if isReal(r) {
			n++
		}
	}
	return n
}
