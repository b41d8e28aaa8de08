// Package pipeline implements the frame processing engine.
package pipeline

import (
	"context"

	"github.com/subghz/wltrace/internal/core"
	"github.com/subghz/wltrace/internal/log"
	"github.com/subghz/wltrace/internal/sink"
	"github.com/subghz/wltrace/internal/transceiver"
)

// Pipeline drives frames from an input channel through one analyzer and
// fans decoded results out to the configured sinks. Frames are
// processed strictly in arrival order by a single goroutine, matching
// the analyzer's single-owner state model.
type Pipeline struct {
	analyzer *transceiver.Analyzer
	sinks    []sink.Sink
	metrics  *Metrics
}

// Config contains pipeline configuration.
type Config struct {
	Analyzer *transceiver.Analyzer
	Sinks    []sink.Sink
}

// New creates a new pipeline.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		analyzer: cfg.Analyzer,
		sinks:    cfg.Sinks,
		metrics:  NewMetrics(),
	}
}

// Run consumes frames until in closes or ctx is cancelled. Each decoded
// result is delivered to every sink; when out is non-nil it also
// receives a copy.
func (p *Pipeline) Run(ctx context.Context, in <-chan core.Frame, out chan<- core.Result) {
	for {
		select {
		case <-ctx.Done():
			return

		case f, ok := <-in:
			if !ok {
				// Channel closed, source exhausted
				return
			}

			p.metrics.Received.Add(1)

			res, ok := p.analyzer.Decode(f)
			// The analyzer owns the drop/diagnostic tallies; mirror them
			// into the atomic counters so Stats stays readable from
			// other goroutines.
			p.metrics.Dropped.Store(p.analyzer.Dropped())
			p.metrics.Diagnostics.Store(p.analyzer.Diagnostics())
			if !ok {
				continue
			}

			switch res.Kind {
			case core.ResultCommand:
				p.metrics.Commands.Add(1)
			case core.ResultError:
				p.metrics.Errors.Add(1)
			}

			for _, s := range p.sinks {
				if err := s.Write(res); err != nil {
					// Log and keep going; one bad sink must not
					// stall decoding.
					p.metrics.SinkErrors.Add(1)
					log.GetLogger().WithError(err).Error("sink write failed")
				}
			}

			if out != nil {
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Received:    p.metrics.Received.Load(),
		Commands:    p.metrics.Commands.Load(),
		Errors:      p.metrics.Errors.Load(),
		Dropped:     p.metrics.Dropped.Load(),
		Diagnostics: p.metrics.Diagnostics.Load(),
		SinkErrors:  p.metrics.SinkErrors.Load(),
	}
}

// Stats represents pipeline statistics.
type Stats struct {
	Received    uint64
	Commands    uint64
	Errors      uint64
	Dropped     uint64
	Diagnostics uint64
	SinkErrors  uint64
}
