// Package export runs the engine's exporter for a set of presets.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/dudasaus/godot-compile/internal/godot"
	"github.com/dudasaus/godot-compile/internal/parser"
)

var ErrIncompletePreset = errors.New("preset is missing a required field")

// Engine exports a single preset. *godot.Runner implements it.
type Engine interface {
	Export(ctx context.Context, projectDir, preset, file string) error
}

// Options controls an export run.
type Options struct {
	ProjectDir  string
	ProjectName string
	OutputDir   string // already created, see NextOutputDir
	Jobs        int    // presets exported at once, <= 1 means one at a time
	DryRun      bool
}

// Result describes one exported preset.
type Result struct {
	Preset string
	File   string
}

type Exporter struct {
	engine Engine
	fs     afero.Fs
	opts   Options
	logger *slog.Logger
}

func NewExporter(engine Engine, fs afero.Fs, opts Options, logger *slog.Logger) *Exporter {
	return &Exporter{
		engine: engine,
		fs:     fs,
		opts:   opts,
		logger: logger,
	}
}

// Plan works out where each preset will be written without touching the
// filesystem. It fails on the first preset without a name, a platform, or
// with a platform we cannot name an output file for.
func (e *Exporter) Plan(presets []*parser.Preset) ([]Result, error) {
	results := make([]Result, 0, len(presets))

	for _, p := range presets {
		name, ok := p.Name()
		if !ok || name == "" {
			return nil, fmt.Errorf("preset.%s: %w: name", p.Index, ErrIncompletePreset)
		}
		platform, ok := p.Platform()
		if !ok || platform == "" {
			return nil, fmt.Errorf("preset %q: %w: platform", name, ErrIncompletePreset)
		}

		file, err := godot.OutputFile(e.opts.ProjectName, platform)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}

		results = append(results, Result{
			Preset: name,
			File:   filepath.Join(e.opts.OutputDir, name, file),
		})
	}

	return results, nil
}

// Export exports presets into their own folders under the output directory.
// The first failure cancels exports that have not started yet.
func (e *Exporter) Export(ctx context.Context, presets []*parser.Preset) ([]Result, error) {
	results, err := e.Plan(presets)
	if err != nil {
		return nil, err
	}

	jobs := max(e.opts.Jobs, 1)
	p := pool.New().
		WithMaxGoroutines(jobs).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for _, r := range results {
		p.Go(func(ctx context.Context) error {
			return e.exportOne(ctx, r)
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Exporter) exportOne(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := e.logger.With("preset", r.Preset)

	if e.opts.DryRun {
		logger.Info("dry run, skipping export", "file", r.File)
		return nil
	}

	logger.Info("exporting preset")

	if err := e.fs.MkdirAll(filepath.Dir(r.File), 0o755); err != nil {
		return fmt.Errorf("failed to create folder for preset %q: %w", r.Preset, err)
	}

	if err := e.engine.Export(ctx, e.opts.ProjectDir, r.Preset, r.File); err != nil {
		return err
	}

	logger.Info("exported preset", "file", r.File)
	return nil
}
