package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}

				if !almostEqual(v, w[63-i], 1e-12) {
					t.Fatalf("coefficient[%d]=%v not symmetric with %v", i, v, w[63-i])
				}
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)

	b := Generate(TypeHann, 16, WithPeriodic())
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}

	checkGolden(t, Generate(TypeHann, 4, WithPeriodic()), []float64{0, 0.5, 1, 0.5}, 1e-12)
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	Apply(TypeRectangular, buf)

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeHann, buf)

	if buf[0] != 0 {
		t.Fatalf("hann first sample should be 0, got %v", buf[0])
	}

	Apply(TypeHann, nil)
}

func TestEnergy(t *testing.T) {
	// A periodic Hann window of length N carries 3N/8 of energy.
	w := Generate(TypeHann, 256, WithPeriodic())
	if got := Energy(w); !almostEqual(got, 96, 1e-9) {
		t.Fatalf("energy=%v, want 96", got)
	}

	if got := Energy(Generate(TypeRectangular, 10)); got != 10 {
		t.Fatalf("rectangular energy=%v, want 10", got)
	}
}

func TestCompatibilityWrappers(t *testing.T) {
	for name, fn := range map[string]func(int, ...Option) ([]float64, error){
		"hann":     Hann,
		"hamming":  Hamming,
		"blackman": Blackman,
	} {
		w, err := fn(64)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		if len(w) != 64 {
			t.Fatalf("%s: len=%d", name, len(w))
		}
	}
}

func TestApplyCoefficientsHelpers(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}

	err = ApplyCoefficientsInPlace(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(samples[1], 1.0, 1e-12) {
		t.Fatalf("samples[1]=%v", samples[1])
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}
	blackmanExpected := []float64{
		0, 0.0904534244, 0.4591829575, 0.9203636181,
		0.9203636181, 0.4591829575, 0.0904534244, 0,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeBlackman, 8), blackmanExpected, 1e-8)
}

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"hann":      TypeHann,
		"Hanning":   TypeHann,
		"boxcar":    TypeRectangular,
		"hamming":   TypeHamming,
		" blackman": TypeBlackman,
	}

	for in, want := range cases {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", in, err)
		}

		if got != want {
			t.Fatalf("ParseType(%q)=%v, want %v", in, got, want)
		}
	}

	if _, err := ParseType("kaiser"); !errors.Is(err, errUnknownType) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}

	if got := Generate(TypeHann, 1); len(got) != 1 || got[0] != 1 {
		t.Fatalf("single-point window=%v, want [1]", got)
	}

	for _, typ := range []Type{TypeRectangular, TypeHamming, TypeBlackman} {
		for _, got := range [][]float64{Generate(typ, 1), Generate(typ, 1, WithPeriodic())} {
			if len(got) != 1 || got[0] != 1 {
				t.Fatalf("%s single-point window=%v, want [1]", typ, got)
			}
		}
	}

	_, err := Hann(0)
	if err == nil {
		t.Fatal("expected size validation error")
	}

	_, err = ApplyCoefficients([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected mismatch error")
	}

	err = ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected mismatch error")
	}

	if got := Type(42).String(); got != "Type(42)" {
		t.Fatalf("String()=%q", got)
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
