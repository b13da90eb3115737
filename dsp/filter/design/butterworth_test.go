package design

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

func TestButterworthLowpassReference(t *testing.T) {
	// Fourth-order lowpass at 0.2 of Nyquist, as produced by the reference
	// SOS design tools.
	want := [][6]float64{
		{0.00482434, 0.00964869, 0.00482434, 1, -1.04859958, 0.29614036},
		{1, 2, 1, 1, -1.32091343, 0.63273879},
	}

	got, err := Butterworth(4, Freq(0.2), Lowpass, 2)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}

	requireSOS(t, got, want, 1e-8)
}

func TestButterworthHighpassReference(t *testing.T) {
	want := [][6]float64{
		{0.5825177969900297, -1.1650355939800594, 0.5825177969900297, 1, -0.9824057931083953, 0.3476653948517233},
	}

	got, err := Butterworth(2, Freq(30), Highpass, 250)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}

	requireSOS(t, got, want, 1e-12)
}

func TestButterworthResponseShape(t *testing.T) {
	const fs = 250.0

	tests := []struct {
		order    int
		cutoff   Cutoff
		kind     Kind
		sections int
		dc       float64
	}{
		{1, Freq(10), Lowpass, 1, 1},
		{1, Freq(10), Highpass, 1, 0},
		{3, Freq(30), Lowpass, 2, 1},
		{4, Freq(30), Lowpass, 2, 1},
		{5, Freq(30), Highpass, 3, 0},
		{6, Freq(1), Highpass, 3, 0},
		{3, Band(2, 40), Bandpass, 3, 0},
		{8, Band(2, 40), Bandpass, 8, 0},
		{3, Band(45, 55), Bandstop, 3, 1},
		{8, Band(45, 55), Bandstop, 8, 1},
		{4, Band(100, 120), Bandstop, 4, 1},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s/%d/%s", tt.kind, tt.order, tt.cutoff)
		t.Run(name, func(t *testing.T) {
			coeffs, err := Butterworth(tt.order, tt.cutoff, tt.kind, fs)
			if err != nil {
				t.Fatalf("Butterworth: %v", err)
			}

			if len(coeffs) != tt.sections {
				t.Fatalf("sections=%d, want %d", len(coeffs), tt.sections)
			}

			chain := biquad.NewChain(coeffs)
			if !chain.Stable() {
				t.Fatal("design has poles on or outside the unit circle")
			}

			if dc := chain.DCGain(); math.Abs(dc-tt.dc) > 1e-9 {
				t.Fatalf("DC gain=%v, want %v", dc, tt.dc)
			}

			// Butterworth edges sit at half power.
			for _, f := range tt.cutoff {
				if db := chain.MagnitudeDB(f, fs); math.Abs(db+3.0103) > 1e-3 {
					t.Fatalf("|H(%v Hz)|=%v dB, want -3.01", f, db)
				}
			}
		})
	}
}

func TestButterworthLowpassMatchesAnalyticMagnitude(t *testing.T) {
	const (
		fs    = 250.0
		fc    = 30.0
		order = 6
	)

	coeffs, err := Butterworth(order, Freq(fc), Lowpass, fs)
	if err != nil {
		t.Fatal(err)
	}

	chain := biquad.NewChain(coeffs)
	wc := math.Tan(math.Pi * fc / fs)

	for f := 5.0; f < fs/2; f += 5 {
		ratio := math.Tan(math.Pi*f/fs) / wc
		want := 1 / (1 + math.Pow(ratio, 2*order))

		got := cmplxAbs2(chain.Response(f, fs))
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("|H(%v)|^2=%v, want %v", f, got, want)
		}
	}
}

func TestButterworthBandstopNotch(t *testing.T) {
	coeffs, err := Butterworth(8, Band(45, 55), Bandstop, 250)
	if err != nil {
		t.Fatal(err)
	}

	chain := biquad.NewChain(coeffs)

	if db := chain.MagnitudeDB(50, 250); db > -100 {
		t.Fatalf("notch depth=%v dB, want < -100", db)
	}

	if db := chain.MagnitudeDB(8, 250); math.Abs(db) > 0.01 {
		t.Fatalf("passband at 8 Hz=%v dB, want ~0", db)
	}
}

func TestButterworthValidation(t *testing.T) {
	tests := []struct {
		name   string
		order  int
		cutoff Cutoff
		kind   Kind
		fs     float64
		want   error
	}{
		{"zero order", 0, Freq(10), Lowpass, 250, ErrInvalidOrder},
		{"negative order", -2, Freq(10), Lowpass, 250, ErrInvalidOrder},
		{"zero rate", 2, Freq(10), Lowpass, 0, ErrInvalidSampleRate},
		{"nan rate", 2, Freq(10), Lowpass, math.NaN(), ErrInvalidSampleRate},
		{"inf rate", 2, Freq(10), Lowpass, math.Inf(1), ErrInvalidSampleRate},
		{"unknown kind", 2, Freq(10), Kind(9), 250, ErrInvalidKind},
		{"band for lowpass", 2, Band(10, 20), Lowpass, 250, ErrInvalidCutoff},
		{"scalar for bandstop", 2, Freq(50), Bandstop, 250, ErrInvalidCutoff},
		{"empty cutoff", 2, nil, Highpass, 250, ErrInvalidCutoff},
		{"at nyquist", 2, Freq(125), Lowpass, 250, ErrInvalidCutoff},
		{"above nyquist", 2, Band(45, 130), Bandpass, 250, ErrInvalidCutoff},
		{"zero cutoff", 2, Freq(0), Highpass, 250, ErrInvalidCutoff},
		{"nan cutoff", 2, Freq(math.NaN()), Lowpass, 250, ErrInvalidCutoff},
		{"inverted band", 2, Band(55, 45), Bandstop, 250, ErrInvalidCutoff},
		{"empty band", 2, Band(50, 50), Bandpass, 250, ErrInvalidCutoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Butterworth(tt.order, tt.cutoff, tt.kind, tt.fs)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestButterworthAnalogPrototype(t *testing.T) {
	sys, err := ButterworthAnalog(4, Freq(30), Lowpass, 250)
	if err != nil {
		t.Fatal(err)
	}

	if len(sys.Zeros) != 0 || len(sys.Poles) != 4 {
		t.Fatalf("zeros=%d poles=%d, want 0/4", len(sys.Zeros), len(sys.Poles))
	}

	wc := prewarp(30, 250)
	for _, p := range sys.Poles {
		if real(p) >= 0 {
			t.Fatalf("analog pole %v not in left half-plane", p)
		}

		if r := math.Hypot(real(p), imag(p)); math.Abs(r-wc)/wc > 1e-12 {
			t.Fatalf("pole radius %v, want %v", r, wc)
		}
	}
}

func requireSOS(t *testing.T, got []biquad.Coefficients, want [][6]float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("sections=%d, want %d", len(got), len(want))
	}

	for i, c := range got {
		row := c.SOS()
		for j := range row {
			if math.Abs(row[j]-want[i][j]) > tol {
				t.Fatalf("section %d tap %d: got %.12f, want %.12f", i, j, row[j], want[i][j])
			}
		}
	}
}

func cmplxAbs2(h complex128) float64 {
	return real(h)*real(h) + imag(h)*imag(h)
}
