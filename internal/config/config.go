package config

// Config holds app configuration
type Config struct {
	// ProjectDir is the Godot project root containing project.godot
	// and export_presets.cfg
	ProjectDir string `mapstructure:"project_dir"`

	// OutputDir is the root output folder. Each run exports into a new
	// <YYYYMMDD>.<NN> folder below it.
	OutputDir string `mapstructure:"output"`

	// Presets selects presets by name or 1-based index without prompting.
	// Empty means ask interactively.
	Presets []string `mapstructure:"presets"`

	// GodotBin is the engine binary, looked up in PATH if not absolute
	GodotBin string `mapstructure:"godot_bin"`
	Jobs     int    `mapstructure:"jobs"`
	Yes      bool   `mapstructure:"yes"`

	DryRun       bool   `mapstructure:"dry_run"`
	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`
}
