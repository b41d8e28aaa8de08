package capture

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subghz/wltrace/internal/core"
)

func writeCapture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewSource_RequiresPath(t *testing.T) {
	_, err := NewSource(Options{})
	assert.Error(t, err)
}

func TestNext_BeforeOpen(t *testing.T) {
	src, err := NewSource(Options{Path: "capture.csv"})
	require.NoError(t, err)

	_, err = src.Next()
	assert.ErrorIs(t, err, core.ErrSourceNotStarted)
}

func TestReadCapture(t *testing.T) {
	path := writeCapture(t, `type,start,end,mosi,miso,detail
enable,0.000001000,0.000001000,,,
transfer,0.000001100,0.000001108,0xC0,0xA2,
disable,0.000001200,0.000001200,,,
error,0.000002000,0.000002001,,,clock glitch
`)
	src, err := NewSource(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, src.Open())
	defer src.Close()

	f, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, core.FrameEnable, f.Type)
	assert.Equal(t, time.Unix(0, 1000), f.Start)

	f, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, core.FrameTransfer, f.Type)
	assert.Equal(t, byte(0xC0), f.MOSI)
	assert.Equal(t, byte(0xA2), f.MISO)
	assert.Equal(t, time.Unix(0, 1100), f.Start)
	assert.Equal(t, time.Unix(0, 1108), f.End)

	f, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, core.FrameDisable, f.Type)

	f, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, core.FrameError, f.Type)
	assert.Equal(t, "clock glitch", f.Detail)

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadCapture_NoHeader(t *testing.T) {
	path := writeCapture(t, "enable,0.1,0.1\n")
	src, err := NewSource(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, src.Open())
	defer src.Close()

	f, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, core.FrameEnable, f.Type)
}

func TestReadCapture_BareHexBytes(t *testing.T) {
	path := writeCapture(t, "transfer,0.1,0.2,80,a2\n")
	src, err := NewSource(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, src.Open())
	defer src.Close()

	f, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), f.MOSI)
	assert.Equal(t, byte(0xA2), f.MISO)
}

func TestReadCapture_Malformed(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"too few columns", "enable,0.1\n"},
		{"bad start time", "transfer,abc,0.2,0x80\n"},
		{"bad mosi byte", "transfer,0.1,0.2,zz\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCapture(t, tc.row)
			src, err := NewSource(Options{Path: path})
			require.NoError(t, err)
			require.NoError(t, src.Open())
			defer src.Close()

			_, err = src.Next()
			assert.True(t, errors.Is(err, core.ErrCaptureFormat), "got %v", err)
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	src, err := NewSource(Options{Path: filepath.Join(t.TempDir(), "nope.csv")})
	require.NoError(t, err)
	assert.Error(t, src.Open())
}
