package design

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidOrder      = errors.New("design: order must be > 0")
	ErrInvalidCutoff     = errors.New("design: invalid cutoff")
	ErrInvalidKind       = errors.New("design: unknown filter kind")
	ErrInvalidSampleRate = errors.New("design: sample rate must be > 0")
	errUnpairedRoots     = errors.New("design: complex roots are not in conjugate pairs")
)

func validate(order int, cutoff Cutoff, kind Kind, sampleRate float64) error {
	if order <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}

	want := 1
	if kind.IsBand() {
		want = 2
	}
	if len(cutoff) != want {
		return fmt.Errorf("%w: %s needs %d critical frequencies, got %d", ErrInvalidCutoff, kind, want, len(cutoff))
	}

	nyquist := sampleRate / 2
	for _, f := range cutoff {
		if !(f > 0 && f < nyquist) {
			return fmt.Errorf("%w: %v Hz must lie in (0, %v) for sample rate %v", ErrInvalidCutoff, f, nyquist, sampleRate)
		}
	}
	if want == 2 && cutoff[0] >= cutoff[1] {
		return fmt.Errorf("%w: band %s must have low < high", ErrInvalidCutoff, cutoff)
	}

	return nil
}
