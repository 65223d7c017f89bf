package main

import (
	"fmt"
	"os"
	"runtime"

	"checkpoints/pkg/config"
	"checkpoints/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	dataDir    string
	fileName   string
	playerName string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "Record, list and remove checkpoint locations in game worlds",
	Long: `Checkpoints keeps a list of 3D locations ("checkpoints") per game world and
stores them as JSON in the plugin data folder.

The list lives in memory and is only written to disk on "save". Use the one-shot
subcommands with --world/--x/--y/--z to act as a player standing at a position,
or start an interactive session with "checkpoints console".`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.checkpoints.yaml or $HOME/.config/checkpoints/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "plugin data folder holding the checkpoints file")
	rootCmd.PersistentFlags().StringVar(&fileName, "file", "", "checkpoints file name inside the data folder")
	rootCmd.PersistentFlags().StringVar(&playerName, "player", "", "name of the player issuing commands")

	rootCmd.SetVersionTemplate(`Checkpoints {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig merges the global flags into the configuration and initializes
// the global logger from it
func loadConfig() (*config.Config, error) {
	flags := make(map[string]interface{})
	if dataDir != "" {
		flags["data-dir"] = dataDir
	}
	if fileName != "" {
		flags["file"] = fileName
	}
	if playerName != "" {
		flags["player"] = playerName
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
