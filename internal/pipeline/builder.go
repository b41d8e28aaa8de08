// Package pipeline implements pipeline construction.
package pipeline

import (
	"github.com/subghz/wltrace/internal/sink"
	"github.com/subghz/wltrace/internal/transceiver"
)

// Builder provides a fluent interface for building pipelines.
// This is an alternative to using Config directly.
type Builder struct {
	config Config
}

// NewBuilder creates a new pipeline builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithAnalyzer sets the transaction analyzer.
func (b *Builder) WithAnalyzer(a *transceiver.Analyzer) *Builder {
	b.config.Analyzer = a
	return b
}

// WithSinks sets the sink chain.
func (b *Builder) WithSinks(sinks ...sink.Sink) *Builder {
	b.config.Sinks = sinks
	return b
}

// Build creates the pipeline.
func (b *Builder) Build() *Pipeline {
	return New(b.config)
}
