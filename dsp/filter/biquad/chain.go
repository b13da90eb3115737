package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// It represents one logical filter (Butterworth, ...) where each
// second-order section feeds into the next.
//
// A Chain carries its own delay lines for single-channel use through
// ProcessSample. ProcessChannels ignores them and runs against an external
// [State] instead.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{
		sections: make([]Section, len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessChannels filters every channel buffer in-place through the cascade.
// Channel ch of section i starts from the delay line held in st and st is
// overwritten with the final delay line, so consecutive calls continue
// seamlessly. Sections run in order over the whole block, which is
// equivalent to sample-by-sample cascading.
//
// st must have NumSections sections and len(bufs) channels.
func (c *Chain) ProcessChannels(bufs [][]float64, st *State) {
	if st.sections != len(c.sections) || st.channels != len(bufs) {
		panic("biquad: state shape does not match chain and channel count")
	}

	var s Section
	for i := range c.sections {
		s.Coefficients = c.sections[i].Coefficients
		d0 := st.Slot(i, 0)
		d1 := st.Slot(i, 1)

		for ch, buf := range bufs {
			s.SetState([2]float64{d0[ch], d1[ch]})
			s.ProcessBlock(buf)
			d0[ch], d1[ch] = s.d0, s.d1
		}
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Coefficients returns a copy of the section coefficients in cascade order.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}

	return out
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
