package design

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Butterworth designs a digital Butterworth filter and returns it as a
// cascade of second-order sections.
//
// cutoff holds one frequency in Hz for Lowpass/Highpass and a (low, high)
// pair for Bandpass/Bandstop; every edge must lie strictly between 0 and the
// Nyquist frequency. Errors wrap ErrInvalidOrder, ErrInvalidCutoff,
// ErrInvalidKind or ErrInvalidSampleRate.
func Butterworth(order int, cutoff Cutoff, kind Kind, sampleRate float64) ([]biquad.Coefficients, error) {
	analog, err := ButterworthAnalog(order, cutoff, kind, sampleRate)
	if err != nil {
		return nil, err
	}

	return bilinear(analog, sampleRate).Sections()
}

// ButterworthAnalog returns the prewarped analog ZPK that [Butterworth]
// maps to the z-plane.
func ButterworthAnalog(order int, cutoff Cutoff, kind Kind, sampleRate float64) (ZPK, error) {
	if err := validate(order, cutoff, kind, sampleRate); err != nil {
		return ZPK{}, err
	}

	proto := butterworthPrototype(order)

	switch kind {
	case Lowpass:
		return lowpassToLowpass(proto, prewarp(cutoff[0], sampleRate)), nil
	case Highpass:
		return lowpassToHighpass(proto, prewarp(cutoff[0], sampleRate)), nil
	}

	lo := prewarp(cutoff[0], sampleRate)
	hi := prewarp(cutoff[1], sampleRate)
	wo := math.Sqrt(lo * hi)
	bw := hi - lo

	if kind == Bandpass {
		return lowpassToBandpass(proto, wo, bw), nil
	}
	return lowpassToBandstop(proto, wo, bw), nil
}
