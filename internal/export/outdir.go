package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(question string) (bool, error)

// EnsureRoot makes sure the root output directory exists, asking confirm
// before creating it.
func EnsureRoot(fs afero.Fs, root string, confirm ConfirmFunc) error {
	exists, err := afero.DirExists(fs, root)
	if err != nil {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}
	if exists {
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Root output directory not found: %s\nCreate it?", root))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("root output directory not found: %s", root)
	}

	if err := fs.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// NextOutputDir creates and returns the first free directory named
// <YYYYMMDD>.<NN> under root, NN counting up from 01.
func NextOutputDir(fs afero.Fs, root string, now time.Time) (string, error) {
	day := now.Format("20060102")

	for version := 1; ; version++ {
		dir := filepath.Join(root, fmt.Sprintf("%s.%02d", day, version))

		exists, err := afero.Exists(fs, dir)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if exists {
			continue
		}

		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
		return dir, nil
	}
}
