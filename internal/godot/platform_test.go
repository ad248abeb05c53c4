package godot_test

import (
	"errors"
	"testing"

	"github.com/dudasaus/godot-compile/internal/godot"
)

func TestOutputFile(t *testing.T) {
	tests := []struct {
		platform string
		want     string
		wantErr  bool
	}{
		{platform: "Windows Desktop", want: "My Game.exe"},
		{platform: "Web", want: "index.html"},
		{platform: "Linux", want: "My Game.x86_64"},
		{platform: "Linux/X11", want: "My Game.x86_64"},
		{platform: "macOS", want: "My Game.zip"},
		{platform: "Android", want: "My Game.apk"},
		{platform: "iOS", wantErr: true},
		{platform: "", wantErr: true},
		{platform: "web", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			got, err := godot.OutputFile("My Game", tt.platform)

			if tt.wantErr {
				var upe *godot.UnsupportedPlatformError
				if !errors.As(err, &upe) {
					t.Fatalf("OutputFile() error = %v, want UnsupportedPlatformError", err)
				}
				if upe.Platform != tt.platform {
					t.Errorf("UnsupportedPlatformError.Platform = %q, want %q", upe.Platform, tt.platform)
				}
				return
			}

			if err != nil {
				t.Fatalf("OutputFile() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputFile() = %q, want %q", got, tt.want)
			}
		})
	}
}
