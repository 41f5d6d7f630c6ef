package main

import (
	"log/slog"
	"os"
)

// setupLogger installs a text logger on stderr. Progress messages are Info,
// per-file detail is Debug.
func setupLogger(verbose, quiet bool) {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
