package pipeline

import "log/slog"

// Option configures a Pipeline at construction.
type Option func(*Pipeline)

// WithStrictShape controls channel-count validation. In strict mode (the
// default) every block must have exactly the configured channel count. When
// disabled, the first filtered block fixes the channel count and later blocks
// must match it.
func WithStrictShape(strict bool) Option {
	return func(p *Pipeline) {
		p.strict = strict
	}
}

// WithPassThrough starts the pipeline with filtering disabled.
func WithPassThrough(enabled bool) Option {
	return func(p *Pipeline) {
		p.passThrough = enabled
	}
}

// WithDesigner replaces the Butterworth designer used by AddFilter.
func WithDesigner(d Designer) Option {
	return func(p *Pipeline) {
		if d != nil {
			p.designer = d
		}
	}
}

// WithLogger routes the pipeline's debug records (cascade added, state
// seeded, reset) to l. Nothing is logged per block.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}
