package spectrum

import (
	"math"
	"testing"
)

func testPSD() *PSD {
	return &PSD{
		Freqs:      []float64{0, 1, 2, 3, 4},
		Power:      []float64{1, 2, 8, 2, 1},
		SampleRate: 8,
		FFTSize:    8,
		Segments:   1,
	}
}

func TestPSDBandPower(t *testing.T) {
	p := testPSD()

	if got := p.Resolution(); got != 1 {
		t.Fatalf("resolution=%v", got)
	}

	if got := p.BandPower(1, 3); got != 12 {
		t.Fatalf("BandPower(1,3)=%v, want 12", got)
	}

	if got := p.BandPower(0.5, 1.5); got != 2 {
		t.Fatalf("BandPower(0.5,1.5)=%v, want 2", got)
	}

	if got := p.BandPower(3, 1); got != 0 {
		t.Fatalf("inverted band=%v, want 0", got)
	}

	if got := p.BandPower(10, 20); got != 0 {
		t.Fatalf("band above Nyquist=%v, want 0", got)
	}
}

func TestPSDPeakAndBin(t *testing.T) {
	p := testPSD()

	f, pw := p.Peak(0, 4)
	if f != 2 || pw != 8 {
		t.Fatalf("Peak=(%v,%v), want (2,8)", f, pw)
	}

	f, pw = p.Peak(3, 4)
	if f != 3 || pw != 2 {
		t.Fatalf("Peak(3,4)=(%v,%v), want (3,2)", f, pw)
	}

	if got := p.Bin(2.4); got != 2 {
		t.Fatalf("Bin(2.4)=%d", got)
	}

	if got := p.Bin(-3); got != 0 {
		t.Fatalf("Bin(-3)=%d", got)
	}

	if got := p.Bin(99); got != 4 {
		t.Fatalf("Bin(99)=%d", got)
	}
}

func TestDB(t *testing.T) {
	if got := DB(100); math.Abs(got-20) > 1e-12 {
		t.Fatalf("DB(100)=%v", got)
	}

	if got := DB(0); got != -300 {
		t.Fatalf("DB(0)=%v", got)
	}
}

func TestPower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	pow := Power(bins)
	want := []float64{25, 2, 0}

	for i := range want {
		if math.Abs(pow[i]-want[i]) > 1e-12 {
			t.Fatalf("Power[%d]=%v, want %v", i, pow[i], want[i])
		}
	}

	if Power(nil) != nil {
		t.Fatal("Power(nil) should be nil")
	}
}
