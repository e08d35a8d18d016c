package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/labchain/anamnesis/pkg/utils/logging"
	"github.com/labchain/anamnesis/pkg/utils/safe"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/urfave/cli/v3"
)

// Logger holds logging configuration
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("ANAMNESIS_LOG_LEVEL"),
			Destination: &l.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Value:       "console",
			Sources:     cli.EnvVars("ANAMNESIS_LOG_FORMAT"),
			Destination: &l.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination (-, stdout, stderr or file path)",
			Value:       "-",
			Sources:     cli.EnvVars("ANAMNESIS_LOG_OUTPUT"),
			Destination: &l.output,
		},
	}
}

// LogValue renders the logger configuration for structured logging
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.level),
		slog.String("format", l.format),
		slog.String("output", l.output),
	)
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure builds the default logger from the configured flags and
// installs it. The returned closer releases the log output if one was
// opened. Counseling narrative fields are redacted from log output;
// they carry client content that must not leak into log storage.
func (l *Logger) Configure() (func(), error) {
	closer := func() {}

	var w io.Writer
	switch l.output {
	case "-", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(l.output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.output))
		}
		w = f
		closer = func() {
			safe.Close(context.Background(), f)
		}
	}

	level, ok := logLevels[strings.ToLower(l.level)]
	if !ok {
		return nil, goerr.Wrap(ErrInvalidConfig, "unknown log level", goerr.V("level", l.level))
	}

	redact := masq.New(
		masq.WithFieldName("Summary"),
		masq.WithFieldName("SpecialNotes"),
		masq.WithFieldName("ClientProfile"),
		masq.WithFieldName("Challenges"),
		masq.WithFieldName("Breakthroughs"),
	)

	var handler slog.Handler
	switch l.format {
	case "console":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(redact),
			clog.WithSource(true),
		)
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: redact,
		})
	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "unknown log format", goerr.V("format", l.format))
	}

	logging.SetDefault(slog.New(handler))
	return closer, nil
}
