package design

import (
	"math"
	"math/cmplx"
)

// ZPK is a transfer function in zero-pole-gain form. Zeros and Poles are
// roots in the s-plane (analog) or z-plane (digital); complex roots appear
// together with their conjugates.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// relativeDegree returns len(Poles) - len(Zeros).
func (z ZPK) relativeDegree() int {
	return len(z.Poles) - len(z.Zeros)
}

// butterworthPrototype returns the analog lowpass Butterworth prototype of the
// given order with a -3 dB corner at 1 rad/s: no zeros, poles evenly spaced on
// the left half of the unit circle.
func butterworthPrototype(order int) ZPK {
	poles := make([]complex128, order)
	for i := range poles {
		m := float64(2*i - order + 1)
		poles[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	return ZPK{Poles: poles, Gain: 1}
}

// lowpassToLowpass moves the prototype corner from 1 rad/s to wo.
func lowpassToLowpass(proto ZPK, wo float64) ZPK {
	w := complex(wo, 0)
	return ZPK{
		Zeros: scaleRoots(proto.Zeros, w),
		Poles: scaleRoots(proto.Poles, w),
		Gain:  proto.Gain * math.Pow(wo, float64(proto.relativeDegree())),
	}
}

// lowpassToHighpass inverts the prototype around wo. Zeros at infinity move
// to the origin.
func lowpassToHighpass(proto ZPK, wo float64) ZPK {
	w := complex(wo, 0)
	zeros := make([]complex128, 0, len(proto.Poles))
	for _, z := range proto.Zeros {
		zeros = append(zeros, w/z)
	}
	for range proto.relativeDegree() {
		zeros = append(zeros, 0)
	}

	poles := make([]complex128, len(proto.Poles))
	for i, p := range proto.Poles {
		poles[i] = w / p
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  proto.Gain * real(negProduct(proto.Zeros)/negProduct(proto.Poles)),
	}
}

// lowpassToBandpass maps the prototype onto a passband centred at wo with
// width bw. Every root splits in two; zeros at infinity gain partners at the
// origin.
func lowpassToBandpass(proto ZPK, wo, bw float64) ZPK {
	half := complex(bw/2, 0)
	zeros := splitRoots(scaleRoots(proto.Zeros, half), wo)
	for range proto.relativeDegree() {
		zeros = append(zeros, 0)
	}

	return ZPK{
		Zeros: zeros,
		Poles: splitRoots(scaleRoots(proto.Poles, half), wo),
		Gain:  proto.Gain * math.Pow(bw, float64(proto.relativeDegree())),
	}
}

// lowpassToBandstop maps the prototype onto a stopband centred at wo with
// width bw. Zeros at infinity move onto ±j·wo.
func lowpassToBandstop(proto ZPK, wo, bw float64) ZPK {
	half := complex(bw/2, 0)

	inv := func(roots []complex128) []complex128 {
		out := make([]complex128, len(roots))
		for i, r := range roots {
			out[i] = half / r
		}
		return out
	}

	zeros := splitRoots(inv(proto.Zeros), wo)
	for range proto.relativeDegree() {
		zeros = append(zeros, complex(0, wo))
	}
	for range proto.relativeDegree() {
		zeros = append(zeros, complex(0, -wo))
	}

	return ZPK{
		Zeros: zeros,
		Poles: splitRoots(inv(proto.Poles), wo),
		Gain:  proto.Gain * real(negProduct(proto.Zeros)/negProduct(proto.Poles)),
	}
}

// bilinear maps an analog ZPK to the z-plane with z = (2fs + s)/(2fs - s).
// Zeros at infinity land on z = -1 (Nyquist).
func bilinear(analog ZPK, sampleRate float64) ZPK {
	fs2 := complex(2*sampleRate, 0)

	zeros := make([]complex128, 0, len(analog.Poles))
	num := complex(1, 0)
	for _, z := range analog.Zeros {
		zeros = append(zeros, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}
	for range analog.relativeDegree() {
		zeros = append(zeros, -1)
	}

	poles := make([]complex128, len(analog.Poles))
	den := complex(1, 0)
	for i, p := range analog.Poles {
		poles[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  analog.Gain * real(num/den),
	}
}

// prewarp returns the analog angular frequency that the bilinear transform
// maps onto hz.
func prewarp(hz, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*hz/sampleRate)
}

func scaleRoots(roots []complex128, k complex128) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * k
	}
	return out
}

// splitRoots returns r ± sqrt(r² - wo²) for every root r, all "+" roots
// first.
func splitRoots(roots []complex128, wo float64) []complex128 {
	w2 := complex(wo*wo, 0)
	out := make([]complex128, 2*len(roots))
	for i, r := range roots {
		d := cmplx.Sqrt(r*r - w2)
		out[i] = r + d
		out[len(roots)+i] = r - d
	}
	return out
}

func negProduct(roots []complex128) complex128 {
	p := complex(1, 0)
	for _, r := range roots {
		p *= -r
	}
	return p
}
