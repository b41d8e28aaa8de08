// Package console renders results as text, one line per transaction.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/subghz/wltrace/internal/core"
)

const timeLayout = "15:04:05.000000000"

// Sink writes human-readable result lines to a writer.
type Sink struct {
	w io.Writer
}

// NewSink creates a console sink. A nil writer means stdout.
func NewSink(w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return &Sink{w: w}
}

func (s *Sink) Write(res core.Result) error {
	line := fmt.Sprintf("%s  %s", res.Start.Format(timeLayout), res.String())
	if res.Kind == core.ResultCommand && len(res.MOSI) > 0 {
		line += fmt.Sprintf("  mosi=%x miso=%x", res.MOSI, res.MISO)
	}
	_, err := fmt.Fprintln(s.w, line)
	return err
}

func (s *Sink) Close() error {
	return nil
}
