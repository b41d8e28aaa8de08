// Package core defines the data types exchanged between sources, the
// analyzer and sinks, with zero external dependencies.
package core

import "time"

// FrameType tags the variant of a Frame delivered by a source.
type FrameType string

const (
	// FrameEnable marks the chip-select line going active: a new
	// transaction begins.
	FrameEnable FrameType = "enable"
	// FrameTransfer carries one full-duplex byte slot: one MOSI byte and
	// one MISO byte clocked simultaneously.
	FrameTransfer FrameType = "transfer"
	// FrameDisable marks the chip-select line going inactive: the
	// transaction is complete.
	FrameDisable FrameType = "disable"
	// FrameError is input the upstream bit-level decoder already flagged
	// as broken (e.g. the clock was in the wrong state on enable).
	FrameError FrameType = "error"
)

// Frame is one event produced by the upstream bit-level SPI decoder.
// Fields beyond Type are populated per variant: Start/End on every timed
// frame, MOSI/MISO on transfer frames, Detail on error frames. A Frame
// whose Type is none of the constants above is still a valid input; the
// analyzer reports it as an unrecognized frame.
type Frame struct {
	Type   FrameType
	Start  time.Time
	End    time.Time
	MOSI   byte
	MISO   byte
	Detail string
}
