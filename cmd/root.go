package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakditstudio/coloGAMA/internal/config"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// backendFlag overrides the configured backend URL for one invocation.
var backendFlag string

var rootCmd = &cobra.Command{
	Use:   "cologama",
	Short: "Terminal client for the coloGAMA colorimetry capture device",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup must work before any config exists.
		if cmd.Name() == "setup" {
			return nil
		}

		// Load and merge config files.
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject()
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.Merge(global, project)

		if backendFlag != "" {
			cfg.BackendURL = backendFlag
		}
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "backend base URL (overrides config)")
}
