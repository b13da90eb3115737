package pipeline

import (
	"fmt"

	"github.com/go-audio/audio"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a read-only samples-by-channels block: Dims reports
// (samples, channels) and At(i, j) returns sample i of channel j.
// *mat.Dense and every other gonum matrix satisfy it.
type Matrix interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// Rows adapts nested per-sample rows, each holding one value per channel,
// to [Matrix]. All rows must have the same length.
type Rows [][]float64

// Dims returns the number of rows and the length of the first row.
func (r Rows) Dims() (int, int) {
	if len(r) == 0 {
		return 0, 0
	}
	return len(r), len(r[0])
}

// At returns r[i][j].
func (r Rows) At(i, j int) float64 { return r[i][j] }

func (r Rows) validate() error {
	samples, channels := r.Dims()
	for i, row := range r {
		if len(row) != channels {
			return &ShapeError{
				Dims:     2,
				Samples:  samples,
				Channels: channels,
				Reason:   fmt.Sprintf("row %d has %d value(s), want %d", i, len(row), channels),
			}
		}
	}
	return nil
}

type validator interface {
	validate() error
}

// AsMatrix converts a dynamically typed block to a [Matrix]. It accepts any
// Matrix, [][]float64 rows and interleaved go-audio buffers. One-dimensional inputs ([]float64, gonum
// vectors) and three-dimensional inputs ([][][]float64) are rejected with a
// *ShapeError.
func AsMatrix(v any) (Matrix, error) {
	switch x := v.(type) {
	case nil:
		return nil, &ShapeError{Reason: "nil input"}
	case mat.Vector:
		return nil, &ShapeError{Dims: 1, Samples: x.Len()}
	case Matrix:
		if val, ok := x.(validator); ok {
			if err := val.validate(); err != nil {
				return nil, err
			}
		}
		return x, nil
	case [][]float64:
		rows := Rows(x)
		if err := rows.validate(); err != nil {
			return nil, err
		}
		return rows, nil
	case []float64:
		return nil, &ShapeError{Dims: 1, Samples: len(x)}
	case [][][]float64:
		return nil, &ShapeError{Dims: 3, Samples: len(x)}
	case audio.Buffer:
		m, err := FromAudio(x)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, &ShapeError{Reason: fmt.Sprintf("unsupported input type %T", v)}
	}
}

// toChannels copies a samples-by-channels block into one buffer per channel.
func toChannels(m Matrix, samples, channels int) [][]float64 {
	data := make([]float64, samples*channels)
	bufs := make([][]float64, channels)

	for c := range bufs {
		bufs[c] = data[c*samples : (c+1)*samples : (c+1)*samples]
	}

	if gm, ok := m.(mat.Matrix); ok {
		for c := range bufs {
			mat.Col(bufs[c], c, gm)
		}
		return bufs
	}

	for i := range samples {
		for c := range bufs {
			bufs[c][i] = m.At(i, c)
		}
	}
	return bufs
}

// fromChannels assembles per-channel buffers into a samples-by-channels matrix.
func fromChannels(bufs [][]float64, samples int) *mat.Dense {
	if samples == 0 || len(bufs) == 0 {
		return &mat.Dense{}
	}

	out := mat.NewDense(samples, len(bufs), nil)
	for c, buf := range bufs {
		out.SetCol(c, buf)
	}
	return out
}
