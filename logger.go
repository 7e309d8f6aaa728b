package viz

import (
	"log/slog"

	"github.com/gogpu/viz/internal/vlog"
)

// SetLogger configures the logger for viz and all its sub-packages.
// By default, viz produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by viz:
//   - [slog.LevelDebug]: internal diagnostics (catalog and registry updates)
//   - [slog.LevelInfo]: important lifecycle events (option tree rebuilds)
//   - [slog.LevelWarn]: non-fatal issues (lookups falling back to defaults)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	viz.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	viz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	vlog.Set(l)
}

// Logger returns the current logger used by viz. Sub-packages share the
// same logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return vlog.Get()
}
