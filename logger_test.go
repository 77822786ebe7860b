package zoomplot

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// recordHandler keeps every record it is given.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *recordHandler) WithGroup(string) slog.Handler             { return h }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func TestLoggerSilentByDefault(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	tests := []struct {
		name  string
		setup func()
	}{
		{"initial", func() {}},
		{"reset with nil", func() {
			SetLogger(slog.New(&recordHandler{}))
			SetLogger(nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
				t.Errorf("Logger() = %v, want a disabled logger", l)
			}
		})
	}
}

func TestSetLoggerReceivesRecords(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	h := &recordHandler{}
	SetLogger(slog.New(h))
	Logger().Debug("matrix inverted", "det", 2.0)

	if len(h.records) != 1 {
		t.Fatalf("got %d records, want 1", len(h.records))
	}
	r := h.records[0]
	if r.Message != "matrix inverted" || r.Level != slog.LevelDebug {
		t.Errorf("record = %q at %v", r.Message, r.Level)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	h := &recordHandler{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(h))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
