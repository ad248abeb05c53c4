package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dudasaus/godot-compile/internal/config"
	"github.com/dudasaus/godot-compile/internal/export"
	"github.com/dudasaus/godot-compile/internal/godot"
	"github.com/dudasaus/godot-compile/internal/logging"
	"github.com/dudasaus/godot-compile/internal/parser"
)

var (
	cfgFile string
	cfg     *config.Config
)

// engine is what compile needs from *godot.Runner
type engine interface {
	export.Engine
	Version(ctx context.Context) (string, error)
}

// swapped out in tests
var (
	newFs     = afero.NewOsFs
	newEngine = func(binary string, logger *slog.Logger) engine {
		return godot.NewRunner(binary, logger)
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "godot-compile [project-dir]",
	Short: "Export a Godot project's presets into a dated output folder",
	Long: `godot-compile reads export_presets.cfg from a Godot project, asks which
preset(s) to build and runs the engine's headless exporter for each of them.

Every run writes to a new <output>/<YYYYMMDD>.<NN>/<preset name>/ folder.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          compile,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	// i/o
	rootCmd.Flags().StringP("output", "o", "", "root output directory (required)")
	rootCmd.Flags().StringSliceP("preset", "p", nil, "preset name or index to export, \"all\" for every preset (skips the prompt)")
	rootCmd.Flags().BoolP("yes", "y", false, "create the output directory without asking")

	// engine
	rootCmd.Flags().String("godot-bin", godot.DefaultBinary, "engine binary to run")
	rootCmd.Flags().IntP("jobs", "j", 1, "number of presets to export at the same time")

	// other opts
	rootCmd.Flags().String("log-level", "info", "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.Flags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stderr and file)")
	rootCmd.Flags().Bool("dry-run", false, "resolve presets and output paths without running the exporter")

	viper.SetDefault("project_dir", ".")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("presets", rootCmd.Flags().Lookup("preset"))
	viper.BindPFlag("yes", rootCmd.Flags().Lookup("yes"))
	viper.BindPFlag("godot_bin", rootCmd.Flags().Lookup("godot-bin"))
	viper.BindPFlag("jobs", rootCmd.Flags().Lookup("jobs"))
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.Flags().Lookup("log-output-dir"))
	viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "godot-compile"))
		}
		viper.AddConfigPath("/etc/godot-compile")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("GODOT_COMPILE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// compile exports the selected presets of the project in args[0]
// (the working directory by default)
func compile(cmd *cobra.Command, args []string) error {
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if len(args) > 0 {
		cfg.ProjectDir = args[0]
	}
	if cfg.OutputDir == "" {
		return errors.New("output directory not specified, use -o or --output")
	}

	// the engine resolves relative export paths against the project dir
	outputRoot, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("invalid output directory: %w", err)
	}

	closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir)
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fs := newFs()
	if cfg.DryRun {
		// reads hit the disk, writes stay in memory
		fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs())
	}

	logger := slog.With("project", cfg.ProjectDir)
	runner := newEngine(cfg.GodotBin, logger)

	if !cfg.DryRun {
		logger.Info("checking for godot", "binary", cfg.GodotBin)
		version, err := runner.Version(ctx)
		if err != nil {
			return err
		}
		logger.Info("found godot", "version", version)
	}

	projectName, err := godot.ProjectName(fs, cfg.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to find project name: %w", err)
	}

	presets, err := godot.LoadPresets(fs, cfg.ProjectDir, logger)
	if err != nil {
		return err
	}

	prompter := export.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	selected, err := pickPresets(prompter, presets.List(), cfg.Presets)
	if err != nil {
		return err
	}

	confirm := prompter.Confirm
	if cfg.Yes {
		confirm = func(string) (bool, error) { return true, nil }
	}
	if err := export.EnsureRoot(fs, outputRoot, confirm); err != nil {
		return err
	}

	outputDir, err := export.NextOutputDir(fs, outputRoot, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Output directory:", outputDir)

	exporter := export.NewExporter(runner, fs, export.Options{
		ProjectDir:  cfg.ProjectDir,
		ProjectName: projectName,
		OutputDir:   outputDir,
		Jobs:        cfg.Jobs,
		DryRun:      cfg.DryRun,
	}, logger)

	results, err := exporter.Export(ctx, selected)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.File)
	}

	return nil
}

// pickPresets uses the --preset choices if any were given and asks
// otherwise
func pickPresets(p *export.Prompter, presets []*parser.Preset, choices []string) ([]*parser.Preset, error) {
	if len(choices) > 0 {
		return export.SelectPresets(presets, choices)
	}
	return p.ChoosePresets(presets)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
