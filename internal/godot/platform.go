package godot

import "fmt"

// UnsupportedPlatformError is returned for export platforms we do not know
// an output file name for.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// OutputFile returns the file name the exporter should write for a preset
// targeting platform. Web exports are always named index.html so they can be
// served from the export folder directly.
func OutputFile(projectName, platform string) (string, error) {
	switch platform {
	case "Windows Desktop":
		return projectName + ".exe", nil
	case "Web":
		return "index.html", nil
	case "Linux", "Linux/X11":
		return projectName + ".x86_64", nil
	case "macOS":
		return projectName + ".zip", nil
	case "Android":
		return projectName + ".apk", nil
	default:
		return "", &UnsupportedPlatformError{Platform: platform}
	}
}
