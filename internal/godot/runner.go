package godot

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultBinary is looked up in PATH when no binary is configured.
const DefaultBinary = "godot"

// PathHelpURL explains how to make the engine available on PATH.
const PathHelpURL = "https://docs.godotengine.org/en/stable/tutorials/editor/command_line_tutorial.html#path"

// Output is what the engine printed during one invocation.
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs the engine binary.
type Runner struct {
	Binary string
	logger *slog.Logger

	// run is swapped out in tests
	run func(ctx context.Context, name string, args ...string) (Output, error)
}

// NewRunner returns a Runner for binary (DefaultBinary if empty).
func NewRunner(binary string, logger *slog.Logger) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{
		Binary: binary,
		logger: logger,
		run:    execRun,
	}
}

func execRun(ctx context.Context, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Output{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}, err
}

// Run invokes the engine with args.
func (r *Runner) Run(ctx context.Context, args ...string) (Output, error) {
	r.logger.Debug("running engine", "binary", r.Binary, "args", args)

	out, err := r.run(ctx, r.Binary, args...)
	if err != nil {
		if out.Stderr != "" {
			return out, fmt.Errorf("%s %s: %w: %s", r.Binary, strings.Join(args, " "), err, out.Stderr)
		}
		return out, fmt.Errorf("%s %s: %w", r.Binary, strings.Join(args, " "), err)
	}

	return out, nil
}

// Version checks that the engine can be run and returns its version string.
// Any output on stderr is treated as a failure.
func (r *Runner) Version(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to run %s, make sure it is installed and in your PATH (%s): %w",
			r.Binary, PathHelpURL, err)
	}
	if out.Stderr != "" {
		return "", fmt.Errorf("%s --version reported an error: %s", r.Binary, out.Stderr)
	}
	return out.Stdout, nil
}

// Export exports the named preset of the project in projectDir to file
// as a release build.
func (r *Runner) Export(ctx context.Context, projectDir, preset, file string) error {
	_, err := r.Run(ctx,
		"--headless",
		"--path", projectDir,
		"--export-release", preset,
		file,
	)
	if err != nil {
		return fmt.Errorf("failed to export preset %q: %w", preset, err)
	}
	return nil
}
