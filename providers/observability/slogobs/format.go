package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatText is slog's key=value text format (default).
	FormatText Format = "text"

	// FormatJSON is one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string. Unknown values yield FormatText.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// FormatFromEnv reads AITEXT_LOG_FORMAT, then LOG_FORMAT.
func FormatFromEnv() Format {
	return ParseFormat(firstEnv("AITEXT_LOG_FORMAT", "LOG_FORMAT"))
}

// ParseLevel parses DEBUG, INFO, WARN/WARNING or ERROR (case-insensitive).
// Unknown or empty values return slog.LevelInfo together with an error so
// callers can decide whether to surface the typo.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// LevelFromEnv reads AITEXT_LOG_LEVEL, then LOG_LEVEL. Default: INFO.
func LevelFromEnv() slog.Level {
	level, err := ParseLevel(firstEnv("AITEXT_LOG_LEVEL", "LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using INFO\n", err)
	}
	return level
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
