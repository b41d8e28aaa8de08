package core

import "time"

// ResultKind tags the variant of a Result.
type ResultKind string

const (
	// ResultCommand is a completed transaction classified by its opcode.
	// An opcode without a table entry still yields a command result,
	// named by the table's unknown sentinel.
	ResultCommand ResultKind = "command"
	// ResultError is a diagnostic for an invalid transaction or for an
	// input frame of unrecognized type.
	ResultError ResultKind = "error"
)

// Result is one decoded outcome emitted by the analyzer: exactly one per
// disable frame and per unrecognized frame, none for any other input.
type Result struct {
	Kind  ResultKind
	Start time.Time
	End   time.Time

	// Command fields. MOSI/MISO hold the aggregated byte streams of the
	// transaction, in transfer order.
	Name string
	MOSI []byte
	MISO []byte

	// Error field.
	Message string
}

// String renders the display template for the result kind: "{name}" for
// commands, "ERROR: {message}" for errors. Sinks own any richer layout.
func (r Result) String() string {
	if r.Kind == ResultError {
		return "ERROR: " + r.Message
	}
	return r.Name
}
