package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/webshell/internal/app"
	"github.com/jmylchreest/webshell/internal/config"
	"github.com/jmylchreest/webshell/internal/model"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "webshell",
	Short: "Native desktop shell for " + model.AppName,
	Long: `webshell opens ` + model.AppURL + ` in a native window with a
platform menu bar and forwards the page's notifications to the desktop.

Running webshell without a subcommand opens the window.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		path, err := configPath()
		if err != nil {
			return err
		}

		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if !globalOpts.verbose {
			logLevel.Set(cfg.LogLevel())
		}
		return nil
	},
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/webshell/config.toml)")
}

// setupLogger configures the global slog logger. The level is held in a
// LevelVar so config reloads can change it.
func setupLogger() {
	logLevel.Set(slog.LevelInfo)
	if globalOpts.verbose {
		logLevel.Set(slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// configPath returns the --config path or the default location.
func configPath() (string, error) {
	if globalOpts.configPath != "" {
		return globalOpts.configPath, nil
	}
	path, err := config.Path()
	if err != nil {
		return "", fmt.Errorf("failed to determine config path: %w", err)
	}
	return path, nil
}

func runShell(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	opts := app.Options{
		Config:     cfg,
		ConfigPath: path,
		Version:    version,
		Logger:     logger,
	}
	// --verbose pins the level; otherwise it follows the config file.
	if !globalOpts.verbose {
		opts.LevelVar = logLevel
	}

	shell, err := app.New(opts)
	if err != nil {
		return err
	}
	return shell.Run()
}
