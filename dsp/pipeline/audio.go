package pipeline

import (
	"fmt"

	"github.com/go-audio/audio"
	"gonum.org/v1/gonum/mat"
)

// Interleaved adapts an interleaved PCM buffer (frame after frame, one value
// per channel) to [Matrix]. Use [FromAudio] to build one.
type Interleaved struct {
	data     []float64
	channels int
}

// FromAudio wraps a go-audio buffer as a samples-by-channels [Matrix]. The
// buffer must carry a format with a positive channel count and hold whole
// frames only.
func FromAudio(b audio.Buffer) (Interleaved, error) {
	if b == nil {
		return Interleaved{}, &ShapeError{Reason: "nil audio buffer"}
	}

	format := b.PCMFormat()
	if format == nil || format.NumChannels <= 0 {
		return Interleaved{}, &ShapeError{Dims: 2, Reason: "audio buffer has no channel format"}
	}

	data := b.AsFloatBuffer().Data
	if len(data)%format.NumChannels != 0 {
		return Interleaved{}, &ShapeError{
			Dims:     2,
			Samples:  len(data) / format.NumChannels,
			Channels: format.NumChannels,
			Reason:   fmt.Sprintf("%d value(s) do not form whole %d-channel frames", len(data), format.NumChannels),
		}
	}

	return Interleaved{data: data, channels: format.NumChannels}, nil
}

// Dims returns (frames, channels).
func (m Interleaved) Dims() (int, int) {
	if m.channels == 0 {
		return 0, 0
	}
	return len(m.data) / m.channels, m.channels
}

// At returns channel j of frame i.
func (m Interleaved) At(i, j int) float64 { return m.data[i*m.channels+j] }

// FilterBuffer filters an interleaved go-audio buffer and returns the result
// as a new interleaved float buffer with the same format. Integer and float32
// buffers are converted to float64 first.
func (p *Pipeline) FilterBuffer(b audio.Buffer) (*audio.FloatBuffer, error) {
	m, err := FromAudio(b)
	if err != nil {
		return nil, err
	}

	out, err := p.Filter(m)
	if err != nil {
		return nil, err
	}

	format := *b.PCMFormat()
	return &audio.FloatBuffer{Format: &format, Data: interleave(out)}, nil
}

func interleave(m *mat.Dense) []float64 {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := range r {
		data = append(data, m.RawRowView(i)...)
	}
	return data
}
