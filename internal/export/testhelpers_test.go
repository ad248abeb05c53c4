package export_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dudasaus/godot-compile/internal/parser"
)

const presetsCfg = `[preset.0]

name="Windows Desktop"
platform="Windows Desktop"

[preset.0.options]

custom_template/release=""

[preset.1]

name="Web"
platform="Web"

[preset.2]

name="Switch"
platform="Nintendo Switch"
`

// loadPresets parses cfg and returns its presets in file order
func loadPresets(t *testing.T, cfg string) []*parser.Preset {
	t.Helper()

	ps, err := parser.ParseGrouped(cfg)
	if err != nil {
		t.Fatalf("ParseGrouped() failed: %v", err)
	}
	return ps.List()
}

func names(presets []*parser.Preset) []string {
	var out []string
	for _, p := range presets {
		name, _ := p.Name()
		out = append(out, name)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
