package biquad

// State is the delay-line tensor of one cascade applied to several
// independent channels. It is indexed [section][slot][channel] where slot is
// 0 or 1 (d0 and d1 of the DF-II-T recurrence). Storage is contiguous with
// the channel index varying fastest.
type State struct {
	sections int
	channels int
	data     []float64
}

// NewState returns a zeroed state for the given section and channel counts.
func NewState(sections, channels int) *State {
	if sections < 0 || channels < 0 {
		panic("biquad: negative state dimension")
	}

	return &State{
		sections: sections,
		channels: channels,
		data:     make([]float64, sections*2*channels),
	}
}

// Sections returns the number of sections covered by the state.
func (s *State) Sections() int { return s.sections }

// Channels returns the number of channels covered by the state.
func (s *State) Channels() int { return s.channels }

// At returns the delay-line value for (section, slot, channel).
func (s *State) At(section, slot, ch int) float64 {
	return s.data[s.offset(section, slot)+ch]
}

// Set stores the delay-line value for (section, slot, channel).
func (s *State) Set(section, slot, ch int, v float64) {
	s.data[s.offset(section, slot)+ch] = v
}

// Slot returns the per-channel row for (section, slot). The returned slice
// aliases the state.
func (s *State) Slot(section, slot int) []float64 {
	off := s.offset(section, slot)
	return s.data[off : off+s.channels : off+s.channels]
}

// Channel returns a copy of the per-section [d0, d1] pairs of one channel.
func (s *State) Channel(ch int) [][2]float64 {
	out := make([][2]float64, s.sections)
	for i := range out {
		out[i] = [2]float64{s.At(i, 0, ch), s.At(i, 1, ch)}
	}

	return out
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{
		sections: s.sections,
		channels: s.channels,
		data:     make([]float64, len(s.data)),
	}
	copy(c.data, s.data)

	return c
}

// Reset zeroes every delay line.
func (s *State) Reset() {
	clear(s.data)
}

func (s *State) offset(section, slot int) int {
	if section < 0 || section >= s.sections || slot < 0 || slot > 1 {
		panic("biquad: state index out of range")
	}

	return (section*2 + slot) * s.channels
}
