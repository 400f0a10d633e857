// Package log configures the process-wide [log/slog] logger.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var ErrUnknownFormat = errors.New("unknown log format")

// NewWithCurrentConfig creates a [slog.Logger] from the KCLFS_LOG_LEVEL and
// KCLFS_LOG_FORMAT environment variables.
func NewWithCurrentConfig() *slog.Logger {
	h, err := CreateHandlerWithStrings(os.Stderr,
		os.Getenv("KCLFS_LOG_LEVEL"), os.Getenv("KCLFS_LOG_FORMAT"))
	if err != nil {
		h = tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})
	}

	return slog.New(h)
}

// CreateHandlerWithStrings creates a [slog.Handler] writing to w.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case LogfmtFormat:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		return tint.NewHandler(w, &tint.Options{Level: level}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
	}
}

// GetLevel parses a level name, defaulting to info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// SetDefaultFromEnv installs the environment-configured logger as the slog
// default.
func SetDefaultFromEnv() {
	slog.SetDefault(NewWithCurrentConfig())
}
