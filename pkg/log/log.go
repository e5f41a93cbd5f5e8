package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	JSONFormat = "json"
	TextFormat = "text"
)

var ErrUnknownFormat = errors.New("unknown log format")

// NewWithCurrentConfig creates a [slog.Logger] from the VBACTL_LOG_LEVEL and
// VBACTL_LOG_FORMAT environment variables.
func NewWithCurrentConfig() (*slog.Logger, error) {
	h, err := CreateHandler(os.Stderr, os.Getenv("VBACTL_LOG_LEVEL"), os.Getenv("VBACTL_LOG_FORMAT"))
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}

// CreateHandler creates a [slog.Handler] writing to w. Format accepts "text",
// "logfmt" (an alias for text), and "json"; an empty format defaults to text.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "logfmt", "":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
	}
}

// GetLevel parses a level string, defaulting to info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info", "":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
