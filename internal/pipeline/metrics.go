// Package pipeline implements pipeline metrics.
package pipeline

import "sync/atomic"

// Metrics contains pipeline counters. Counters are atomic so Stats can
// be read from outside the processing goroutine.
type Metrics struct {
	Received    atomic.Uint64 // frames consumed
	Commands    atomic.Uint64 // command results emitted
	Errors      atomic.Uint64 // error results emitted
	Dropped     atomic.Uint64 // transfer frames discarded by the analyzer
	Diagnostics atomic.Uint64 // malformed-input frames reported upstream
	SinkErrors  atomic.Uint64 // failed sink writes
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Reset resets all counters to zero.
func (m *Metrics) Reset() {
	m.Received.Store(0)
	m.Commands.Store(0)
	m.Errors.Store(0)
	m.Dropped.Store(0)
	m.Diagnostics.Store(0)
	m.SinkErrors.Store(0)
}
