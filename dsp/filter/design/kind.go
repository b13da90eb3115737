package design

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the response shape of a designed filter.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	Bandpass
	Bandstop
)

var kindNames = [...]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Bandstop: "bandstop",
}

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Lowpass && k <= Bandstop
}

// IsBand reports whether the kind needs a (low, high) band edge pair.
func (k Kind) IsBand() bool {
	return k == Bandpass || k == Bandstop
}

// ParseKind parses a kind name. Besides the canonical names it accepts the
// short forms lp, hp, bp, bs and the words low, high, pass, stop.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass", "lp", "low":
		return Lowpass, nil
	case "highpass", "hp", "high":
		return Highpass, nil
	case "bandpass", "bp", "pass":
		return Bandpass, nil
	case "bandstop", "bs", "stop":
		return Bandstop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Cutoff holds the critical frequencies of a design in Hz: one value for
// lowpass and highpass, a (low, high) pair for bandpass and bandstop.
type Cutoff []float64

// Freq returns a single-frequency cutoff.
func Freq(hz float64) Cutoff { return Cutoff{hz} }

// Band returns a band-edge cutoff.
func Band(lowHz, highHz float64) Cutoff { return Cutoff{lowHz, highHz} }

// String formats the cutoff as "30" or "(45, 55)".
func (c Cutoff) String() string {
	if len(c) == 1 {
		return strconv.FormatFloat(c[0], 'g', -1, 64)
	}

	parts := make([]string, len(c))
	for i, f := range c {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
