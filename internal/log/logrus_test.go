package log

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterPattern(t *testing.T) {
	f := &formatter{
		pattern: "%time [%level] %field %msg\n",
		time:    "15:04:05",
	}
	entry := &logrus.Entry{
		Time:    time.Date(2025, 1, 2, 10, 20, 30, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "decode finished",
		Data:    logrus.Fields{"frames": 42},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.True(t, strings.HasPrefix(line, "10:20:30 [info] "), "got %q", line)
	assert.Contains(t, line, "frames=42")
	assert.Contains(t, line, "decode finished")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestFormatterMultipleFields(t *testing.T) {
	f := &formatter{pattern: "%field", time: defaultTime}
	entry := &logrus.Entry{
		Time:  time.Now(),
		Level: logrus.WarnLevel,
		Data:  logrus.Fields{"detail": "clock glitch", "frames": 3},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "detail=clock glitch")
	assert.Contains(t, line, "frames=3")
}

func TestGetLogger_LazyInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
}

func TestInitRebindsLogger(t *testing.T) {
	Init(&Config{Level: "debug"})
	l := GetLogger()
	require.NotNil(t, l)

	// Chained field loggers must be independent instances.
	assert.NotNil(t, l.WithField("k", "v"))
	assert.NotNil(t, l.WithFields(map[string]any{"a": 1}))
	assert.NotNil(t, l.WithError(errors.New("boom")))
}

func TestNewLogrus_BadLevelFallsBack(t *testing.T) {
	// Invalid levels silently fall back to info rather than failing
	// logger construction.
	assert.NotNil(t, newLogrus(&Config{Level: "loud"}))
}
