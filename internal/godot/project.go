// Package godot reads Godot project files and drives the engine binary.
package godot

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dudasaus/godot-compile/internal/parser"
)

const (
	// ProjectFile holds the project settings, including its display name.
	ProjectFile = "project.godot"
	// PresetsFile holds the export presets configured in the editor.
	PresetsFile = "export_presets.cfg"
)

var (
	ErrProjectNameNotFound = errors.New("project name not found")
	ErrPresetsNotFound     = errors.New("export presets file not found")
)

// ProjectName reads application/config/name from the project file in dir.
func ProjectName(fs afero.Fs, dir string) (string, error) {
	file := filepath.Join(dir, ProjectFile)

	content, err := afero.ReadFile(fs, file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}

	// config_version sits above the first section header
	doc, err := parser.Parse(string(content),
		parser.AllowMultiline(),
		parser.TopLevelSection(""),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", file, err)
	}

	v, ok := doc.Lookup("application", "config/name")
	if !ok {
		return "", fmt.Errorf("%s: %w", file, ErrProjectNameNotFound)
	}

	name, ok := v.AsString()
	if !ok || name == "" {
		return "", fmt.Errorf("%s: %w (config/name is %s %q)", file, ErrProjectNameNotFound, v.Kind(), v)
	}

	return name, nil
}

// LoadPresets reads and groups the export presets file in dir.
func LoadPresets(fs afero.Fs, dir string, logger *slog.Logger) (*parser.Presets, error) {
	file := filepath.Join(dir, PresetsFile)

	exists, err := afero.Exists(fs, file)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", file, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPresetsNotFound, file)
	}

	content, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	presets, err := parser.ParseGrouped(string(content),
		parser.AllowMultiline(),
		parser.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	logger.Debug("loaded export presets",
		"file", file,
		"count", presets.Len(),
	)

	return presets, nil
}
