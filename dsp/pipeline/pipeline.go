package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

var errNoSections = errors.New("cascade has no sections")

type cascade struct {
	chain *biquad.Chain
	// unit is the steady state for a unit step, scaled per channel when
	// streaming starts.
	unit [][2]float64
	info FilterInfo
}

// Pipeline applies an ordered list of IIR cascades to successive
// multi-channel blocks, keeping per-cascade, per-channel state between calls.
type Pipeline struct {
	numChannels int
	sampleRate  float64
	strict      bool
	passThrough bool
	designer    Designer
	logger      *slog.Logger

	cascades []cascade
	// states is nil until the first Filter call, then holds one state per
	// cascade.
	states []*biquad.State
	width  int
}

// New returns an empty pipeline for numChannels channels sampled at
// sampleRate Hz. Both must be positive; otherwise a *ConfigurationError is
// returned.
func New(numChannels int, sampleRate float64, opts ...Option) (*Pipeline, error) {
	if numChannels <= 0 {
		return nil, &ConfigurationError{Field: "numChannels", Value: numChannels}
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, &ConfigurationError{Field: "sampleRate", Value: sampleRate}
	}

	p := &Pipeline{
		numChannels: numChannels,
		sampleRate:  sampleRate,
		strict:      true,
		designer:    Butterworth,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p, nil
}

// NumChannels returns the configured channel count.
func (p *Pipeline) NumChannels() int { return p.numChannels }

// SampleRate returns the configured sample rate in Hz.
func (p *Pipeline) SampleRate() float64 { return p.sampleRate }

// Len returns the number of cascades.
func (p *Pipeline) Len() int { return len(p.cascades) }

// Started reports whether filter state exists, i.e. a block has been
// filtered since construction or the last Reset.
func (p *Pipeline) Started() bool { return p.states != nil }

// AddFilter designs a filter and appends it to the end of the pipeline.
//
// cutoff holds one frequency in Hz for lowpass and highpass filters and a
// (low, high) band for bandpass and bandstop. Design failures are returned as
// a *DesignError wrapping the designer's error. Cascades cannot be added once
// streaming has started; call Reset first.
func (p *Pipeline) AddFilter(order int, cutoff design.Cutoff, kind design.Kind) error {
	if err := p.checkMutable(); err != nil {
		return err
	}

	info := FilterInfo{
		Name:   p.nextName(),
		Kind:   kind.String(),
		Order:  order,
		Cutoff: append(design.Cutoff(nil), cutoff...),
	}

	coeffs, err := p.designer.Design(order, cutoff, kind, p.sampleRate)
	if err != nil {
		return &DesignError{Filter: info, Err: err}
	}

	return p.appendCascade(info, coeffs)
}

// AddSections appends an externally designed cascade given as
// [b0 b1 b2 a0 a1 a2] rows. Rows are normalised by a0. Malformed, unstable
// or steady-state-less sections are rejected with a *DesignError.
func (p *Pipeline) AddSections(sos [][6]float64) error {
	if err := p.checkMutable(); err != nil {
		return err
	}

	info := customInfo(p.nextName(), len(sos))

	coeffs := make([]biquad.Coefficients, len(sos))
	for i, row := range sos {
		c, err := biquad.FromSOS(row)
		if err != nil {
			return &DesignError{Filter: info, Err: fmt.Errorf("section %d: %w", i, err)}
		}
		coeffs[i] = c
	}

	return p.appendCascade(info, coeffs)
}

// AddCoefficients appends an externally designed cascade of normalised
// sections. It applies the same checks as AddSections.
func (p *Pipeline) AddCoefficients(coeffs []biquad.Coefficients) error {
	if err := p.checkMutable(); err != nil {
		return err
	}

	info := customInfo(p.nextName(), len(coeffs))

	for i := range coeffs {
		if _, err := biquad.FromSOS(coeffs[i].SOS()); err != nil {
			return &DesignError{Filter: info, Err: fmt.Errorf("section %d: %w", i, err)}
		}
	}

	return p.appendCascade(info, append([]biquad.Coefficients(nil), coeffs...))
}

func (p *Pipeline) appendCascade(info FilterInfo, coeffs []biquad.Coefficients) error {
	if len(coeffs) == 0 {
		return &DesignError{Filter: info, Err: errNoSections}
	}

	chain := biquad.NewChain(coeffs)
	if !chain.Stable() {
		return &DesignError{Filter: info, Err: biquad.ErrUnstable}
	}

	unit, err := biquad.SteadyState(coeffs)
	if err != nil {
		return &DesignError{Filter: info, Err: err}
	}

	info.Sections = len(coeffs)
	p.cascades = append(p.cascades, cascade{chain: chain, unit: unit, info: info})

	p.logger.Debug("cascade added",
		"name", info.Name,
		"kind", info.Kind,
		"order", info.Order,
		"sections", info.Sections,
	)

	return nil
}

func (p *Pipeline) checkMutable() error {
	if p.states != nil {
		return &ConfigurationError{Field: "cascades", Err: ErrStarted}
	}
	return nil
}

func (p *Pipeline) nextName() string {
	return fmt.Sprintf("filter_%d", len(p.cascades))
}

// SetPassThrough toggles pass-through mode. While enabled, Filter returns a
// copy of its input without touching filter state.
func (p *Pipeline) SetPassThrough(enabled bool) {
	p.passThrough = enabled
}

// PassThrough reports whether pass-through mode is enabled.
func (p *Pipeline) PassThrough() bool { return p.passThrough }

// Reset drops all filter state. The next Filter call seeds every cascade from
// its first sample again, and cascades may be added until then.
func (p *Pipeline) Reset() {
	p.states = nil
	p.width = 0
	p.logger.Debug("state reset", "cascades", len(p.cascades))
}

// States returns a copy of each cascade's state, or nil before streaming
// starts.
func (p *Pipeline) States() []*biquad.State {
	if p.states == nil {
		return nil
	}

	out := make([]*biquad.State, len(p.states))
	for i, st := range p.states {
		out[i] = st.Clone()
	}
	return out
}

// Filter runs one block through every cascade and returns the filtered block
// in samples-by-channels orientation.
//
// The block must be rectangular and two-dimensional, so gonum vectors are
// rejected even though they satisfy Matrix. In strict mode it must have NumChannels
// columns, otherwise every block must match the width of the first one.
// Violations return a *ShapeError and leave the state untouched. The first
// successful call seeds the state from the block's first sample. A block
// without samples returns an empty matrix and does not start streaming.
//
// In pass-through mode only the layout is checked and a copy of the input is
// returned.
func (p *Pipeline) Filter(m Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, &ShapeError{Reason: "nil input"}
	}
	if v, ok := m.(mat.Vector); ok {
		return nil, &ShapeError{Dims: 1, Samples: v.Len()}
	}
	if v, ok := m.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}

	samples, channels := m.Dims()

	if p.passThrough {
		return fromChannels(toChannels(m, samples, channels), samples), nil
	}

	if samples == 0 {
		return &mat.Dense{}, nil
	}

	if err := p.checkChannels(samples, channels); err != nil {
		return nil, err
	}

	bufs := toChannels(m, samples, channels)

	if p.states == nil {
		p.seed(bufs)
	}

	for k := range p.cascades {
		p.cascades[k].chain.ProcessChannels(bufs, p.states[k])
	}

	return fromChannels(bufs, samples), nil
}

// FilterRows is Filter for nested per-sample rows.
func (p *Pipeline) FilterRows(rows [][]float64) ([][]float64, error) {
	out, err := p.Filter(Rows(rows))
	if err != nil {
		return nil, err
	}

	samples, _ := out.Dims()
	res := make([][]float64, samples)
	for i := range res {
		res[i] = mat.Row(nil, i, out)
	}
	return res, nil
}

func (p *Pipeline) checkChannels(samples, channels int) error {
	want := p.width
	if p.strict {
		want = p.numChannels
	}

	switch {
	case channels == 0:
		return &ShapeError{Dims: 2, Samples: samples, Reason: "block has no channels"}
	case want > 0 && channels != want:
		return &ShapeError{Dims: 2, Samples: samples, Channels: channels, Want: want}
	}
	return nil
}

// seed creates every cascade's state from the first sample of each channel.
func (p *Pipeline) seed(bufs [][]float64) {
	levels := make([]float64, len(bufs))
	for c, buf := range bufs {
		levels[c] = buf[0]
	}

	states := make([]*biquad.State, len(p.cascades))
	for k := range p.cascades {
		states[k] = biquad.SeedState(p.cascades[k].unit, levels)
	}

	p.states = states
	p.width = len(bufs)

	p.logger.Debug("state seeded",
		"cascades", len(states),
		"channels", len(bufs),
	)
}
