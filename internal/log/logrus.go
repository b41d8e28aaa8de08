package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultPattern = "%time [%level] %field %msg\n"
	defaultTime    = "15:04:05.000000"
)

// Config controls logger construction.
type Config struct {
	Level   string          // trace/debug/info/warn/error, default info
	Pattern string          // output pattern, %time %level %field %msg tokens
	Time    string          // timestamp layout inside %time
	File    FileAppenderOpt // optional rotating file appender
}

type logrusAdapter struct {
	entry *logrus.Entry
}

func newLogrus(cfg *Config) Logger {
	if cfg.Pattern == "" {
		cfg.Pattern = defaultPattern
	}
	if cfg.Time == "" {
		cfg.Time = defaultTime
	}

	l := logrus.New()
	l.SetFormatter(&formatter{
		pattern: cfg.Pattern,
		time:    cfg.Time,
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	out := NewMultiWriter().Add(os.Stdout)
	if cfg.File.Enabled {
		out = out.AddFileAppender(cfg.File)
	}
	l.SetOutput(out)

	return &logrusAdapter{entry: logrus.NewEntry(l)}
}

func (l *logrusAdapter) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logrusAdapter) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }

func (l *logrusAdapter) Info(args ...any)                 { l.entry.Info(args...) }
func (l *logrusAdapter) Infof(format string, args ...any) { l.entry.Infof(format, args...) }

func (l *logrusAdapter) Warn(args ...any)                 { l.entry.Warn(args...) }
func (l *logrusAdapter) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }

func (l *logrusAdapter) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logrusAdapter) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

func (l *logrusAdapter) WithField(field string, value any) Logger {
	return &logrusAdapter{entry: l.entry.WithField(field, value)}
}
func (l *logrusAdapter) WithFields(fields map[string]any) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields)}
}
func (l *logrusAdapter) WithError(err error) Logger {
	return &logrusAdapter{entry: l.entry.WithError(err)}
}

// formatter renders entries through a pattern with %time, %level,
// %field and %msg tokens.
type formatter struct {
	pattern string
	time    string
}

func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	output := f.pattern
	output = strings.Replace(output, "%time", entry.Time.Format(f.time), 1)
	output = strings.Replace(output, "%level", entry.Level.String(), 1)
	output = strings.Replace(output, "%field", buildFields(entry), 1)
	output = strings.Replace(output, "%msg", entry.Message, 1)
	return []byte(output), nil
}

func buildFields(entry *logrus.Entry) string {
	fields := make([]string, 0, len(entry.Data))
	for key, val := range entry.Data {
		stringVal, ok := val.(string)
		if !ok {
			stringVal = fmt.Sprint(val)
		}
		fields = append(fields, key+"="+stringVal)
	}
	return strings.Join(fields, ",")
}
