package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

func levelFromString(s string) (l slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return slog.LevelDebug, true
	case "info", "inf":
		return slog.LevelInfo, true
	case "warn", "wrn":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// DefaultPath is the log file location under the XDG state directory.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "ingredientparser", "ingredientparser.log")
}

// Init points the default slog logger at a text handler writing to path.
func Init(path, level string) error {
	loglevel, _ := levelFromString(level)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	// https://cs.opensource.google/go/go/+/refs/tags/go1.24.1:src/log/slog/handler.go;l=265-315;drc=3d61de41a28b310fedc345d76320829bd08146b3
	// slog defaults to logging in the order of time, level, msg, and other attributes.
	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: loglevel})

	slog.SetDefault(slog.New(handler))
	return nil
}
