package design

import (
	"errors"
	"math"
	"testing"
)

func TestSectionsFirstOrder(t *testing.T) {
	sys := ZPK{Zeros: []complex128{-1}, Poles: []complex128{0.5}, Gain: 0.25}

	got, err := sys.Sections()
	if err != nil {
		t.Fatal(err)
	}

	requireSOS(t, got, [][6]float64{{0.25, 0.25, 0, 1, -0.5, 0}}, 1e-15)
}

func TestSectionsGainOnly(t *testing.T) {
	got, err := ZPK{Gain: 3}.Sections()
	if err != nil {
		t.Fatal(err)
	}

	requireSOS(t, got, [][6]float64{{3, 0, 0, 1, 0, 0}}, 0)
}

func TestSectionsUnpairedConjugate(t *testing.T) {
	sys := ZPK{Poles: []complex128{complex(0.3, 0.4)}, Gain: 1}

	if _, err := sys.Sections(); !errors.Is(err, errUnpairedRoots) {
		t.Fatalf("err=%v, want unpaired roots", err)
	}
}

func TestSectionsPolesNearestCircleLast(t *testing.T) {
	sys := ZPK{
		Zeros: []complex128{-1, -1, -1, -1},
		Poles: []complex128{
			complex(0.2, 0.3), complex(0.2, -0.3),
			complex(0.6, 0.7), complex(0.6, -0.7),
		},
		Gain: 1,
	}

	got, err := sys.Sections()
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("sections=%d, want 2", len(got))
	}

	// a2 of a conjugate section is |p|^2.
	if a2 := got[1].A2; math.Abs(a2-0.85) > 1e-12 {
		t.Fatalf("last section a2=%v, want 0.85", a2)
	}

	if a2 := got[0].A2; math.Abs(a2-0.13) > 1e-12 {
		t.Fatalf("first section a2=%v, want 0.13", a2)
	}
}

func TestExpandRootsRightAligned(t *testing.T) {
	if got := expandRoots(nil); got != [3]float64{0, 0, 1} {
		t.Fatalf("expandRoots(nil)=%v", got)
	}

	if got := expandRoots([]complex128{2}); got != [3]float64{0, 1, -2} {
		t.Fatalf("expandRoots(2)=%v", got)
	}

	if got := expandRoots([]complex128{complex(1, 1), complex(1, -1)}); got != [3]float64{1, -2, 2} {
		t.Fatalf("expandRoots(1±j)=%v", got)
	}
}
