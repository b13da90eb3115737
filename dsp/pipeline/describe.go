package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// KindCustom is the FilterInfo kind of cascades added as raw sections.
const KindCustom = "custom"

// FilterInfo describes one cascade of the pipeline.
type FilterInfo struct {
	// Name is "filter_<index>" in pipeline order.
	Name string
	// Kind is the designed kind ("lowpass", "bandstop", ...) or KindCustom.
	Kind string
	// Order and Cutoff are the design request; zero for custom cascades.
	Order  int
	Cutoff design.Cutoff
	// Sections is the number of biquad sections in the cascade.
	Sections int
}

func customInfo(name string, sections int) FilterInfo {
	return FilterInfo{Name: name, Kind: KindCustom, Sections: sections}
}

func (f FilterInfo) describe() string {
	if f.Kind == KindCustom {
		return fmt.Sprintf("%s sections=%d", f.Kind, f.Sections)
	}
	return fmt.Sprintf("%s order=%d cutoff=%s", f.Kind, f.Order, f.Cutoff)
}

// String renders the cascade as "filter_0: bandstop order=8 cutoff=(45, 55)".
func (f FilterInfo) String() string {
	return f.Name + ": " + f.describe()
}

// Filters returns the descriptions of all cascades in pipeline order.
func (p *Pipeline) Filters() []FilterInfo {
	out := make([]FilterInfo, len(p.cascades))
	for i, c := range p.cascades {
		out[i] = c.info
		out[i].Cutoff = append(design.Cutoff(nil), c.info.Cutoff...)
	}
	return out
}

// String renders the pipeline configuration, for example
// "Pipeline(num_channels=2, sample_rate=250, filters=[filter_0: bandstop order=8 cutoff=(45, 55)])".
func (p *Pipeline) String() string {
	parts := make([]string, len(p.cascades))
	for i, c := range p.cascades {
		parts[i] = c.info.String()
	}

	return fmt.Sprintf("Pipeline(num_channels=%d, sample_rate=%s, filters=[%s])",
		p.numChannels,
		strconv.FormatFloat(p.sampleRate, 'g', -1, 64),
		strings.Join(parts, ", "),
	)
}
