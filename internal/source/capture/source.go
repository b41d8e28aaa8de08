// Package capture reads frame events from a logic-analyzer CSV export.
//
// Expected columns: type,start,end,mosi,miso,detail. Times are decimal
// seconds from the start of the capture; the byte columns are hex and
// only meaningful on transfer rows; detail is only meaningful on error
// rows. A leading header row is skipped.
package capture

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/subghz/wltrace/internal/core"
)

// Options configures the capture source.
type Options struct {
	Path string `mapstructure:"path"`
}

// Source reads frames from one CSV capture file.
type Source struct {
	path string
	file *os.File
	r    *csv.Reader
}

// NewSource creates a capture source for the given options.
func NewSource(opts Options) (*Source, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("capture source requires 'path' option")
	}
	return &Source{path: opts.Path}, nil
}

// Open opens the capture file.
func (s *Source) Open() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open capture file %s: %w", s.path, err)
	}
	s.file = f
	s.r = csv.NewReader(f)
	// Rows have trailing columns only when their variant needs them.
	s.r.FieldsPerRecord = -1
	return nil
}

// Next returns the next frame. io.EOF passes through unwrapped when the
// capture is exhausted.
func (s *Source) Next() (core.Frame, error) {
	if s.r == nil {
		return core.Frame{}, core.ErrSourceNotStarted
	}
	for {
		rec, err := s.r.Read()
		if err != nil {
			return core.Frame{}, err
		}
		if len(rec) > 0 && rec[0] == "type" {
			// Header row
			continue
		}
		return parseRecord(rec)
	}
}

// Close closes the capture file.
func (s *Source) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.r = nil
		return err
	}
	return nil
}

func parseRecord(rec []string) (core.Frame, error) {
	if len(rec) < 3 {
		return core.Frame{}, fmt.Errorf("%w: want at least 3 columns, got %d", core.ErrCaptureFormat, len(rec))
	}

	f := core.Frame{Type: core.FrameType(strings.TrimSpace(rec[0]))}

	var err error
	if f.Start, err = parseSeconds(rec[1]); err != nil {
		return core.Frame{}, fmt.Errorf("%w: bad start time %q: %v", core.ErrCaptureFormat, rec[1], err)
	}
	if f.End, err = parseSeconds(rec[2]); err != nil {
		return core.Frame{}, fmt.Errorf("%w: bad end time %q: %v", core.ErrCaptureFormat, rec[2], err)
	}

	if len(rec) > 3 && rec[3] != "" {
		if f.MOSI, err = parseByte(rec[3]); err != nil {
			return core.Frame{}, fmt.Errorf("%w: bad mosi byte %q: %v", core.ErrCaptureFormat, rec[3], err)
		}
	}
	if len(rec) > 4 && rec[4] != "" {
		if f.MISO, err = parseByte(rec[4]); err != nil {
			return core.Frame{}, fmt.Errorf("%w: bad miso byte %q: %v", core.ErrCaptureFormat, rec[4], err)
		}
	}
	if len(rec) > 5 {
		f.Detail = rec[5]
	}

	return f, nil
}

// parseSeconds converts a decimal-seconds column into a capture-relative
// timestamp.
func parseSeconds(v string) (time.Time, error) {
	sec, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, int64(sec*float64(time.Second))), nil
}

// parseByte accepts "0x80" and bare hex "80".
func parseByte(v string) (byte, error) {
	v = strings.TrimSpace(v)
	var n uint64
	var err error
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		n, err = strconv.ParseUint(v[2:], 16, 8)
	} else {
		n, err = strconv.ParseUint(v, 16, 8)
	}
	return byte(n), err
}
