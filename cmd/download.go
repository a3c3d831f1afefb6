package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakditstudio/coloGAMA/internal/api"
	"github.com/jakditstudio/coloGAMA/internal/download"
	"github.com/jakditstudio/coloGAMA/internal/history"
)

var downloadCmd = &cobra.Command{
	Use:   "download <n>",
	Short: "Download the n-th newest report from the history listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("expected a 1-based record number, got %q", args[0])
		}

		client := api.New(GetConfig())
		listing, err := client.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		records := history.Normalize(*listing, time.Now())
		if n > len(records) {
			return fmt.Errorf("history has %d records, asked for %d", len(records), n)
		}

		path, err := download.Save(cmd.Context(), client, records[n-1], GetConfig().DownloadDir)
		if err != nil {
			return err
		}
		fmt.Println("Saved", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
