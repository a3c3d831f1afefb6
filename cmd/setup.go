package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/jakditstudio/coloGAMA/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure cologama (re-run anytime to edit settings)",
	// Bypass the normal PersistentPreRunE so setup works before config exists.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("setup needs an interactive terminal; edit the config file instead")
		}
		return runSetup()
	},
}

// runSetup runs the interactive setup wizard and writes the global config.
func runSetup() error {
	r := bufio.NewReader(os.Stdin)

	ask := func(prompt, defaultVal string) (string, error) {
		if defaultVal != "" {
			fmt.Printf("%s [%s]: ", prompt, defaultVal)
		} else {
			fmt.Printf("%s: ", prompt)
		}
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultVal, nil
		}
		return line, nil
	}

	// Existing global config provides the defaults (edit mode).
	cfg := config.Defaults()
	if existing, err := config.LoadGlobal(); err == nil && existing != nil {
		cfg = *existing
	}

	fmt.Println()
	fmt.Println("  ┌─────────────────────────────────┐")
	fmt.Println("  │     cologama — device setup     │")
	fmt.Println("  └─────────────────────────────────┘")
	fmt.Println()

	var err error

	cfg.BackendURL, err = ask("  Device backend URL", cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	cfg.DownloadDir, err = ask("  Download directory", cfg.DownloadDir)
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	timeout, err := ask("  Request timeout in seconds (0 = none)", strconv.Itoa(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}
	if n, convErr := strconv.Atoi(timeout); convErr == nil && n >= 0 {
		cfg.RequestTimeout = n
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	path, _ := config.GlobalPath()
	fmt.Println("  ✓ Config saved to", path)
	fmt.Println("  Run 'cologama history' to browse reports or 'cologama capture' to start.")
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
