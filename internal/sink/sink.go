// Package sink defines the result sink interface.
package sink

import "github.com/subghz/wltrace/internal/core"

// Sink receives decoded results. Implementations are invoked from a
// single pipeline goroutine and need no internal locking.
type Sink interface {
	Write(res core.Result) error
	Close() error
}
