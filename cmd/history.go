package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/jakditstudio/coloGAMA/internal/api"
	"github.com/jakditstudio/coloGAMA/internal/history"
	"github.com/jakditstudio/coloGAMA/internal/lastcapture"
	"github.com/jakditstudio/coloGAMA/internal/tui"
	"github.com/jakditstudio/coloGAMA/internal/view"
)

var (
	plainHistory  bool
	historyFilter string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously generated reports, images and histograms",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.New(GetConfig())

		// Pipes and redirects get the plain listing.
		if plainHistory || !term.IsTerminal(os.Stdout.Fd()) {
			return printHistory(cmd, client)
		}

		store, err := lastcapture.NewStore()
		if err != nil {
			// The browser works without the store; results just start empty.
			store = nil
		}
		return tui.Run(client, GetConfig(), store)
	},
}

// printHistory writes the normalized, optionally filtered listing to stdout.
func printHistory(cmd *cobra.Command, client *api.Client) error {
	listing, err := client.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	now := time.Now()
	records := history.Normalize(*listing, now)

	state := view.NewState()
	if historyFilter != "" {
		f, err := parseFilter(historyFilter)
		if err != nil {
			return err
		}
		state.SetFilter(f)
	}
	visible := state.Visible(records)

	if len(visible) == 0 {
		fmt.Println("No files found")
		return nil
	}
	for _, rec := range visible {
		fmt.Printf("%-10s %-12s %s\n", rec.Type, history.RelativeDate(rec.Timestamp, now), rec.Name)
	}
	return nil
}

func parseFilter(s string) (view.Filter, error) {
	for _, f := range view.Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q (use all, pdf, image or histogram)", s)
}

func init() {
	historyCmd.Flags().BoolVar(&plainHistory, "plain", false, "plain text listing instead of the interactive browser")
	historyCmd.Flags().StringVar(&historyFilter, "type", "", "filter the plain listing: all, pdf, image, histogram")
	rootCmd.AddCommand(historyCmd)
}
