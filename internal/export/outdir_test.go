package export_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/dudasaus/godot-compile/internal/export"
)

func TestNextOutputDir(t *testing.T) {
	now := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name: "first export of the day",
			want: filepath.Join("out", "20240307.01"),
		},
		{
			name:     "skips taken versions",
			existing: []string{"20240307.01", "20240307.02"},
			want:     filepath.Join("out", "20240307.03"),
		},
		{
			name:     "other days do not count",
			existing: []string{"20240306.01"},
			want:     filepath.Join("out", "20240307.01"),
		},
		{
			name:     "goes past two digits",
			existing: numbered("20240307", 99),
			want:     filepath.Join("out", "20240307.100"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, dir := range tt.existing {
				if err := fs.MkdirAll(filepath.Join("out", dir), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := export.NextOutputDir(fs, "out", now)
			if err != nil {
				t.Fatalf("NextOutputDir() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextOutputDir() = %q, want %q", got, tt.want)
			}
			if ok, _ := afero.DirExists(fs, got); !ok {
				t.Errorf("NextOutputDir() did not create %s", got)
			}
		})
	}
}

func numbered(day string, n int) []string {
	var out []string
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("%s.%02d", day, i))
	}
	return out
}

func TestEnsureRoot(t *testing.T) {
	t.Run("existing root is not confirmed", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		fs.MkdirAll("out", 0o755)

		err := export.EnsureRoot(fs, "out", func(string) (bool, error) {
			t.Error("confirm called for an existing directory")
			return false, nil
		})
		if err != nil {
			t.Fatalf("EnsureRoot() failed: %v", err)
		}
	})

	t.Run("created after confirmation", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		err := export.EnsureRoot(fs, filepath.Join("builds", "out"), func(string) (bool, error) {
			return true, nil
		})
		if err != nil {
			t.Fatalf("EnsureRoot() failed: %v", err)
		}
		if ok, _ := afero.DirExists(fs, filepath.Join("builds", "out")); !ok {
			t.Error("EnsureRoot() did not create the directory")
		}
	})

	t.Run("declined", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		err := export.EnsureRoot(fs, "out", func(string) (bool, error) {
			return false, nil
		})
		if err == nil {
			t.Fatal("EnsureRoot() succeeded unexpectedly")
		}
		if ok, _ := afero.DirExists(fs, "out"); ok {
			t.Error("EnsureRoot() created the directory without confirmation")
		}
	})

	t.Run("confirm error", func(t *testing.T) {
		boom := errors.New("boom")
		err := export.EnsureRoot(afero.NewMemMapFs(), "out", func(string) (bool, error) {
			return false, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("EnsureRoot() error = %v, want %v", err, boom)
		}
	})
}
