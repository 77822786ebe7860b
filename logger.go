package zoomplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for zoomplot and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by zoomplot:
//   - [slog.LevelDebug]: per-draw diagnostics (transfer matrices, skipped primitives)
//   - [slog.LevelInfo]: lifecycle events (backend selected, file written)
//   - [slog.LevelWarn]: non-fatal issues (degraded Gouraud output, font fallback)
//
// Example:
//
//	zoomplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// Sub-packages call this to share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
