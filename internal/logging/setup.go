// Package logging builds the slog handlers used across slotlab.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Output formats accepted by NewHandler
const (
	FormatText = "text"
	FormatJSON = "json"
)

// levelSettings maps a level name onto a slog level plus the extra detail shown at that level.
// Trace is debug with caller information. Unknown names fall back to info.
func levelSettings(logLevel string) (level slog.Level, reportCaller bool, reportTimestamp bool) {
	switch strings.ToLower(logLevel) {
	case "trace":
		return slog.LevelDebug, true, true
	case "debug":
		return slog.LevelDebug, false, true
	case "warn", "warning":
		return slog.LevelWarn, false, false
	case "error":
		return slog.LevelError, false, false
	default:
		return slog.LevelInfo, false, false
	}
}

// SetupHandlerText configures a charmbracelet/log text handler with the provided writer and level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	level, reportCaller, reportTimestamp := levelSettings(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           log.Level(level),
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	level, reportCaller, _ := levelSettings(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: reportCaller,
	})
}

// NewHandler returns a JSON handler when format is "json", and the text handler otherwise
func NewHandler(format, logLevel string, writer io.Writer) slog.Handler {
	if strings.EqualFold(format, FormatJSON) {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupLogger builds a handler for the given format, level and output, installs it as the
// slog default, and returns the resulting logger.
func SetupLogger(format, logLevel, output string) (*slog.Logger, error) {
	writer, err := CreateWriter(output)
	if err != nil {
		return nil, err
	}

	logger := slog.New(NewHandler(format, logLevel, writer))
	slog.SetDefault(logger)
	return logger, nil
}
