package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/zoomplot/zoomplot/internal/config"
)

func TestRun(t *testing.T) {
	tests := []struct {
		backend string
		magic   []byte
	}{
		{"png", []byte("\x89PNG")},
		{"pdf", []byte("%PDF")},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := &config.Config{
				Output:   filepath.Join(t.TempDir(), "out."+tt.backend),
				Backend:  tt.backend,
				Width:    3,
				Height:   2,
				DPI:      50,
				Zoom:     3,
				Points:   60,
				Seed:     7,
				LogLevel: "error",
			}
			if err := run(cfg); err != nil {
				t.Fatalf("run: %v", err)
			}
			data, err := os.ReadFile(cfg.Output)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, tt.magic) {
				t.Errorf("output starts with %q, want %q", data[:min(8, len(data))], tt.magic)
			}
		})
	}
}

func TestRunUnknownBackend(t *testing.T) {
	cfg := &config.Config{
		Output: filepath.Join(t.TempDir(), "out.svg"), Backend: "svg",
		Width: 1, Height: 1, DPI: 10, Zoom: 2, LogLevel: "info",
	}
	if err := run(cfg); err == nil {
		t.Error("run with unknown backend succeeded")
	}
}
