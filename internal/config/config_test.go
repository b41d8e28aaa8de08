package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subghz/wltrace/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wltrace.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
wltrace:
  log:
    level: debug
  source:
    type: capture
    options:
      path: capture.csv
  sinks:
    - type: console
    - type: jsonl
      options:
        path: out.jsonl
  tables:
    commands:
      "0x41": Noop
    registers:
      "0x0123": TESTREG
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "capture", cfg.Source.Type)
	assert.Equal(t, "capture.csv", cfg.Source.Options["path"])

	require.Len(t, cfg.Sinks, 2)
	assert.Equal(t, "console", cfg.Sinks[0].Type)
	assert.Equal(t, "jsonl", cfg.Sinks[1].Type)
	assert.Equal(t, "out.jsonl", cfg.Sinks[1].Options["path"])

	commands, err := cfg.Tables.CommandOverrides()
	require.NoError(t, err)
	assert.Equal(t, map[byte]string{0x41: "Noop"}, commands)

	registers, err := cfg.Tables.RegisterOverrides()
	require.NoError(t, err)
	assert.Equal(t, map[uint16]string{0x0123: "TESTREG"}, registers)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
wltrace:
  source:
    options:
      path: capture.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "capture", cfg.Source.Type)
	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, "console", cfg.Sinks[0].Type)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, 100, cfg.Log.File.MaxSizeMB)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeConfig(t, `
wltrace:
  log:
    level: loud
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}

func TestLoad_InvalidSourceType(t *testing.T) {
	path := writeConfig(t, `
wltrace:
  source:
    type: live
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}

func TestLoad_InvalidSinkType(t *testing.T) {
	path := writeConfig(t, `
wltrace:
  sinks:
    - type: kafka
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}

func TestLoad_BadTableKey(t *testing.T) {
	path := writeConfig(t, `
wltrace:
  tables:
    commands:
      "0xZZ": Broken
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}

func TestTablesConfig_KeyFormats(t *testing.T) {
	tc := TablesConfig{Commands: map[string]string{
		"0x41": "HexUpper",
		"128":  "Decimal",
	}}

	overrides, err := tc.CommandOverrides()
	require.NoError(t, err)
	assert.Equal(t, "HexUpper", overrides[0x41])
	assert.Equal(t, "Decimal", overrides[0x80])
}

func TestTablesConfig_KeyOutOfRange(t *testing.T) {
	tc := TablesConfig{Commands: map[string]string{"0x1FF": "TooBig"}}
	_, err := tc.CommandOverrides()
	assert.ErrorIs(t, err, core.ErrConfigInvalid)

	rc := TablesConfig{Registers: map[string]string{"0x1FFFF": "TooBig"}}
	_, err = rc.RegisterOverrides()
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "capture", cfg.Source.Type)
	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, "console", cfg.Sinks[0].Type)
}
