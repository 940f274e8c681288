package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/focusexpress/internal/config"
)

// newLogger returns a JSON logger that writes to w at the configured level.
func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// setupLogger directs the default logger to the rotated log file. The
// returned closer flushes the file.
func setupLogger(cfg *config.Config, path string) io.Closer {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}

	slog.SetDefault(newLogger(w, cfg.LogLevel()))

	return w
}
