// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/subghz/wltrace/internal/core"
)

// GlobalConfig represents the top-level static configuration. Maps to
// the `wltrace:` root key in YAML.
type GlobalConfig struct {
	Log    LogConfig    `mapstructure:"log"`
	Source SourceConfig `mapstructure:"source"`
	Sinks  []SinkConfig `mapstructure:"sinks"`
	Tables TablesConfig `mapstructure:"tables"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string        `mapstructure:"level"`   // debug / info / warn / error
	Pattern string        `mapstructure:"pattern"` // %time %level %field %msg tokens
	Time    string        `mapstructure:"time"`    // timestamp layout inside %time
	File    FileLogConfig `mapstructure:"file"`
}

// FileLogConfig configures the optional rotating file appender.
type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// SourceConfig selects the frame source. Options are decoded by the
// concrete source's option struct.
type SourceConfig struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:"options"`
}

// SinkConfig selects one result sink.
type SinkConfig struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:"options"`
}

// TablesConfig extends or overrides the built-in command and register
// tables. Keys are opcode bytes / 16-bit addresses written as numbers
// ("0x80", "128"); values are display names.
type TablesConfig struct {
	Commands  map[string]string `mapstructure:"commands"`
	Registers map[string]string `mapstructure:"registers"`
}

// CommandOverrides parses the command table overrides.
func (t TablesConfig) CommandOverrides() (map[byte]string, error) {
	if len(t.Commands) == 0 {
		return nil, nil
	}
	overrides := make(map[byte]string, len(t.Commands))
	for key, name := range t.Commands {
		op, err := parseKey(key, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: bad command opcode %q: %v", core.ErrConfigInvalid, key, err)
		}
		overrides[byte(op)] = name
	}
	return overrides, nil
}

// RegisterOverrides parses the register table overrides.
func (t TablesConfig) RegisterOverrides() (map[uint16]string, error) {
	if len(t.Registers) == 0 {
		return nil, nil
	}
	overrides := make(map[uint16]string, len(t.Registers))
	for key, name := range t.Registers {
		addr, err := parseKey(key, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: bad register address %q: %v", core.ErrConfigInvalid, key, err)
		}
		overrides[uint16(addr)] = name
	}
	return overrides, nil
}

// parseKey accepts decimal and 0x-prefixed hex table keys.
func parseKey(key string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(key), 0, bits)
}

// configRoot is the top-level wrapper matching the YAML structure
// `wltrace: ...`.
type configRoot struct {
	Wltrace GlobalConfig `mapstructure:"wltrace"`
}

// Load loads configuration from file. The YAML file uses `wltrace:` as
// root key; env vars override via the key replacer (e.g. key
// "wltrace.log.level" → env "WLTRACE_LOG_LEVEL").
func Load(path string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Wltrace

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file
// is given: console sink, capture source, info logging.
func Default() *GlobalConfig {
	cfg := &GlobalConfig{}
	cfg.Log.Level = "info"
	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		// Built-in defaults always validate.
		panic(err)
	}
	return cfg
}

// setDefaults sets default values for configuration. All keys use the
// "wltrace." prefix to match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("wltrace.log.level", "info")
	v.SetDefault("wltrace.log.file.enabled", false)
	v.SetDefault("wltrace.log.file.path", "wltrace.log")
	v.SetDefault("wltrace.log.file.max_size_mb", 100)
	v.SetDefault("wltrace.log.file.max_age_days", 30)
	v.SetDefault("wltrace.log.file.max_backups", 5)
	v.SetDefault("wltrace.log.file.compress", true)

	v.SetDefault("wltrace.source.type", "capture")
}

// ValidateAndApplyDefaults validates configuration and applies runtime
// defaults.
func (cfg *GlobalConfig) ValidateAndApplyDefaults() error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("%w: invalid log level %q (must be trace/debug/info/warn/error)",
			core.ErrConfigInvalid, cfg.Log.Level)
	}

	if cfg.Source.Type == "" {
		cfg.Source.Type = "capture"
	}
	if cfg.Source.Type != "capture" {
		return fmt.Errorf("%w: unsupported source type %q (only 'capture' supported)",
			core.ErrConfigInvalid, cfg.Source.Type)
	}

	if len(cfg.Sinks) == 0 {
		cfg.Sinks = []SinkConfig{{Type: "console"}}
	}
	for _, s := range cfg.Sinks {
		switch s.Type {
		case "console", "jsonl":
		default:
			return fmt.Errorf("%w: unsupported sink type %q (must be console or jsonl)",
				core.ErrConfigInvalid, s.Type)
		}
	}

	// Table overrides must parse even if nothing consumes them yet.
	if _, err := cfg.Tables.CommandOverrides(); err != nil {
		return err
	}
	if _, err := cfg.Tables.RegisterOverrides(); err != nil {
		return err
	}

	return nil
}
