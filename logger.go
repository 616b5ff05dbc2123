package gltext

import (
	"log/slog"

	"github.com/gogpu/gltext/internal/logging"
)

// SetLogger configures the logger for gltext and all its sub-packages.
// By default, gltext produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gltext:
//   - [slog.LevelDebug]: glyph load failures, batch rebuilds
//   - [slog.LevelInfo]: atlas built, GL resources created
//   - [slog.LevelWarn]: atlas overflow, debug dump skipped
//
// Example:
//
//	gltext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by gltext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
