// Package core defines sentinel errors.
package core

import "errors"

var (
	// Source errors
	ErrSourceNotStarted = errors.New("wltrace: source not started")
	ErrCaptureFormat    = errors.New("wltrace: malformed capture record")

	// Configuration errors
	ErrConfigInvalid = errors.New("wltrace: invalid configuration")
)
