// Package jsonl appends results to a file as JSON Lines, one object per
// decoded result.
package jsonl

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/subghz/wltrace/internal/core"
)

// Options configures the jsonl sink.
type Options struct {
	Path string `mapstructure:"path"`
}

// Sink appends JSON-encoded results to a file.
type Sink struct {
	file *os.File
	enc  *json.Encoder
}

// record is the serialized form of a Result. Timestamps are
// capture-relative nanoseconds; byte streams are hex strings.
type record struct {
	Kind    string `json:"kind"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
	StartNS int64  `json:"start_ns"`
	EndNS   int64  `json:"end_ns"`
	MOSI    string `json:"mosi,omitempty"`
	MISO    string `json:"miso,omitempty"`
}

// NewSink creates a jsonl sink appending to the file at opts.Path.
func NewSink(opts Options) (*Sink, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("jsonl sink requires 'path' option")
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open jsonl file %s: %w", opts.Path, err)
	}
	return &Sink{file: f, enc: json.NewEncoder(f)}, nil
}

func (s *Sink) Write(res core.Result) error {
	return s.enc.Encode(record{
		Kind:    string(res.Kind),
		Name:    res.Name,
		Message: res.Message,
		StartNS: res.Start.UnixNano(),
		EndNS:   res.End.UnixNano(),
		MOSI:    hex.EncodeToString(res.MOSI),
		MISO:    hex.EncodeToString(res.MISO),
	})
}

func (s *Sink) Close() error {
	return s.file.Close()
}
