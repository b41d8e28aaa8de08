package transceiver

import (
	"fmt"
	"time"

	"github.com/subghz/wltrace/internal/core"
	"github.com/subghz/wltrace/internal/log"
)

// Analyzer is the transaction aggregation state machine. It consumes
// frames one at a time, accumulates the MOSI/MISO byte streams between
// an enable and a disable frame, and classifies the completed
// transaction by its first MOSI byte.
//
// The machine has two states: Idle (no transaction) and Open (transfers
// accumulating). An enable frame moves any state to Open, discarding an
// unclosed transaction. A disable frame moves any state to Idle and
// always produces exactly one Result. Transfer frames are accumulated
// while Open and dropped while Idle.
//
// Not safe for concurrent use; run one Analyzer per input stream.
type Analyzer struct {
	commands CommandTable

	// In-progress transaction. started flips on the first transfer
	// frame; end tracks the last transfer frame seen.
	enabled bool
	started bool
	start   time.Time
	end     time.Time
	frames  []core.Frame

	// Stream-lifetime tallies, not cleared by reset.
	dropped     uint64
	diagnostics uint64
}

// New creates an Analyzer classifying opcodes against commands.
func New(commands CommandTable) *Analyzer {
	return &Analyzer{commands: commands}
}

// Decode consumes one frame. It returns a Result and true when the
// frame completes a transaction or is itself of unrecognized type;
// enable, transfer and error frames produce no Result.
func (a *Analyzer) Decode(f core.Frame) (core.Result, bool) {
	switch f.Type {
	case core.FrameEnable:
		a.handleEnable()
		return core.Result{}, false
	case core.FrameTransfer:
		a.handleTransfer(f)
		return core.Result{}, false
	case core.FrameDisable:
		return a.handleDisable(f), true
	case core.FrameError:
		a.handleError(f)
		return core.Result{}, false
	default:
		return core.Result{
			Kind:    core.ResultError,
			Start:   f.Start,
			End:     f.End,
			Message: fmt.Sprintf("unexpected frame type from source: %s", f.Type),
		}, true
	}
}

// handleEnable opens a transaction, discarding any unclosed one.
func (a *Analyzer) handleEnable() {
	if a.enabled && len(a.frames) > 0 {
		a.dropped += uint64(len(a.frames))
		log.GetLogger().WithField("transfers", len(a.frames)).
			Debug("enable while a transaction is open, discarding accumulated transfers")
	}
	a.reset()
	a.enabled = true
}

// handleTransfer accumulates one byte slot while a transaction is open.
func (a *Analyzer) handleTransfer(f core.Frame) {
	if !a.enabled {
		a.dropped++
		log.GetLogger().Debug("transfer outside a transaction, dropped")
		return
	}
	if !a.started {
		a.started = true
		a.start = f.Start
	}
	a.end = f.End
	a.frames = append(a.frames, f)
}

// handleDisable closes the transaction and produces its Result. A valid
// transaction carries the timestamps of its first and last transfer; an
// invalid one carries the disable frame's own timestamps, since the
// session never recorded any.
func (a *Analyzer) handleDisable(f core.Frame) core.Result {
	defer a.reset()

	if !a.valid() {
		started := "unset"
		if a.started {
			started = a.start.Format(time.RFC3339Nano)
		}
		return core.Result{
			Kind:    core.ResultError,
			Start:   f.Start,
			End:     f.End,
			Message: fmt.Sprintf("invalid transaction (enabled=%t, start=%s)", a.enabled, started),
		}
	}

	mosi, miso := a.transaction()
	return core.Result{
		Kind:  core.ResultCommand,
		Name:  a.commands.Name(mosi[0]),
		Start: a.start,
		End:   a.end,
		MOSI:  mosi,
		MISO:  miso,
	}
}

// handleError reports upstream-flagged bad input to the log and drops
// the transaction. No Result: the upstream decoder already surfaced the
// failure, this is a diagnostic, not a decode.
func (a *Analyzer) handleError(f core.Frame) {
	a.diagnostics++
	log.GetLogger().WithFields(map[string]any{
		"detail": f.Detail,
		"start":  f.Start,
		"end":    f.End,
	}).Warn("bad input flagged by upstream decoder, transaction dropped")
	a.reset()
}

// valid reports whether the open transaction observed at least one
// transfer.
func (a *Analyzer) valid() bool {
	return a.enabled && a.started
}

// Dropped returns the number of transfer frames discarded so far, either
// arriving outside a transaction or displaced by a re-opening enable.
func (a *Analyzer) Dropped() uint64 {
	return a.dropped
}

// Diagnostics returns the number of malformed-input frames seen so far.
func (a *Analyzer) Diagnostics() uint64 {
	return a.diagnostics
}

// transaction concatenates the accumulated frames' byte streams in
// transfer order.
func (a *Analyzer) transaction() (mosi, miso []byte) {
	mosi = make([]byte, 0, len(a.frames))
	miso = make([]byte, 0, len(a.frames))
	for _, f := range a.frames {
		mosi = append(mosi, f.MOSI)
		miso = append(miso, f.MISO)
	}
	return mosi, miso
}

// reset returns the machine to Idle with no accumulated state. The
// dropped/diagnostics tallies span the stream and survive resets.
func (a *Analyzer) reset() {
	a.enabled = false
	a.started = false
	a.start = time.Time{}
	a.end = time.Time{}
	a.frames = nil
}
