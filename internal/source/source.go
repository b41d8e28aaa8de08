// Package source defines the frame source interface.
package source

import "github.com/subghz/wltrace/internal/core"

// Source produces SPI frames in capture order. Next returns io.EOF once
// the capture is exhausted.
type Source interface {
	Open() error
	Next() (core.Frame, error)
	Close() error
}
