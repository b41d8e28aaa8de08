package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/subghz/wltrace/internal/config"
	"github.com/subghz/wltrace/internal/core"
	"github.com/subghz/wltrace/internal/log"
	"github.com/subghz/wltrace/internal/pipeline"
	"github.com/subghz/wltrace/internal/sink"
	"github.com/subghz/wltrace/internal/sink/console"
	"github.com/subghz/wltrace/internal/sink/jsonl"
	"github.com/subghz/wltrace/internal/source"
	"github.com/subghz/wltrace/internal/source/capture"
	"github.com/subghz/wltrace/internal/transceiver"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [capture.csv]",
	Short: "Decode SPI transactions from a capture file",
	Long: `
Decode captured SPI frame events into named transceiver commands.

The capture file may be given as an argument or via source.options.path
in the configuration file; the argument wins.

Examples:
  wltrace decode capture.csv                # decode with built-in defaults
  wltrace decode -c wltrace.yml             # capture path and sinks from config
  wltrace decode -c wltrace.yml capture.csv # config sinks, explicit capture
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.Init(&log.Config{
		Level:   cfg.Log.Level,
		Pattern: cfg.Log.Pattern,
		Time:    cfg.Log.Time,
		File: log.FileAppenderOpt{
			Enabled:    cfg.Log.File.Enabled,
			Filename:   cfg.Log.File.Path,
			MaxSize:    cfg.Log.File.MaxSizeMB,
			MaxAge:     cfg.Log.File.MaxAgeDays,
			MaxBackups: cfg.Log.File.MaxBackups,
			Compress:   cfg.Log.File.Compress,
		},
	})

	commands, err := commandTable(cfg)
	if err != nil {
		return err
	}

	src, err := buildSource(cfg, args)
	if err != nil {
		return err
	}
	if err := src.Open(); err != nil {
		return err
	}
	defer src.Close()

	sinks, err := buildSinks(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeSinks(sinks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames := make(chan core.Frame, 256)
	go func() {
		defer close(frames)
		for {
			f, err := src.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					log.GetLogger().WithError(err).Error("capture read failed")
				}
				return
			}
			select {
			case frames <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	p := pipeline.NewBuilder().
		WithAnalyzer(transceiver.New(commands)).
		WithSinks(sinks...).
		Build()
	p.Run(ctx, frames, nil)

	stats := p.Stats()
	log.GetLogger().WithFields(map[string]any{
		"frames":      stats.Received,
		"commands":    stats.Commands,
		"errors":      stats.Errors,
		"dropped":     stats.Dropped,
		"diagnostics": stats.Diagnostics,
		"sink_errors": stats.SinkErrors,
	}).Info("decode finished")

	return nil
}

// buildSource creates the configured frame source. A positional capture
// path overrides the configured one.
func buildSource(cfg *config.GlobalConfig, args []string) (source.Source, error) {
	var opts capture.Options
	if err := mapstructure.Decode(cfg.Source.Options, &opts); err != nil {
		return nil, fmt.Errorf("bad source options: %w", err)
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	return capture.NewSource(opts)
}

// buildSinks creates the configured sink chain. Console sinks write to
// stdout (the command's out stream, for testability). When one sink
// fails to construct, the ones already opened are closed.
func buildSinks(cfg *config.GlobalConfig, stdout io.Writer) ([]sink.Sink, error) {
	sinks := make([]sink.Sink, 0, len(cfg.Sinks))
	for _, sc := range cfg.Sinks {
		switch sc.Type {
		case "console":
			sinks = append(sinks, console.NewSink(stdout))
		case "jsonl":
			var opts jsonl.Options
			if err := mapstructure.Decode(sc.Options, &opts); err != nil {
				closeSinks(sinks)
				return nil, fmt.Errorf("bad jsonl sink options: %w", err)
			}
			s, err := jsonl.NewSink(opts)
			if err != nil {
				closeSinks(sinks)
				return nil, err
			}
			sinks = append(sinks, s)
		default:
			closeSinks(sinks)
			return nil, fmt.Errorf("unsupported sink type: %s", sc.Type)
		}
	}
	return sinks, nil
}

func closeSinks(sinks []sink.Sink) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			log.GetLogger().WithError(err).Error("sink close failed")
		}
	}
}
