// Package log provides the process-wide structured logger backed by
// logrus. This is the observability sink that receives analyzer
// diagnostics.
package log

// Logger is the leveled logging interface used across the project.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)

	Info(args ...any)
	Infof(format string, args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)

	WithField(field string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger
}

var logger Logger

// GetLogger returns the process logger, initializing it with defaults
// on first use.
func GetLogger() Logger {
	if logger == nil {
		logger = newLogrus(&Config{})
	}
	return logger
}

// Init replaces the process logger according to cfg. Call before the
// pipeline starts; later calls rebind the global for subsequent
// GetLogger callers.
func Init(cfg *Config) {
	logger = newLogrus(cfg)
}
