package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/jakditstudio/coloGAMA/internal/api"
	"github.com/jakditstudio/coloGAMA/internal/lastcapture"
	"github.com/jakditstudio/coloGAMA/internal/tui"
)

var plainCapture bool

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Trigger a hardware capture and show the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.New(GetConfig())

		fmt.Fprintln(os.Stderr, "Capturing…")
		session, err := client.Capture(cmd.Context())
		if err != nil {
			return fmt.Errorf("capture failed: %w", err)
		}

		store, err := lastcapture.NewStore()
		if err == nil {
			// Best effort; the printed/shown session is the result.
			_ = store.Save(session)
		} else {
			store = nil
		}

		if plainCapture || !term.IsTerminal(os.Stdout.Fd()) {
			printSession(session)
			return nil
		}
		return tui.RunResults(client, GetConfig(), store, session)
	},
}

// printSession writes a plain-text results summary to stdout.
func printSession(s *api.CaptureSession) {
	fmt.Println("## Capture Results")
	for _, c := range s.Captures {
		fmt.Printf("  Capture %d\n", c.CaptureNumber)
		fmt.Printf("    Image:  %s\n", c.ImageURL)
		fmt.Printf("    R: %d, G: %d, B: %d\n", c.RGBValues.R, c.RGBValues.G, c.RGBValues.B)
	}
	if s.PDFURL != "" {
		fmt.Printf("  Report: %s\n", s.PDFURL)
	}
}

var clearResults bool

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Reopen the most recent capture results",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := lastcapture.NewStore()
		if err != nil {
			return err
		}
		if clearResults {
			if err := store.Delete(); err != nil {
				return fmt.Errorf("clear stored capture: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Stored capture results cleared.")
			return nil
		}
		session, err := store.Load()
		if err != nil {
			return fmt.Errorf("no capture data available — run 'cologama capture' first: %w", err)
		}

		client := api.New(GetConfig())
		if plainCapture || !term.IsTerminal(os.Stdout.Fd()) {
			printSession(session)
			return nil
		}
		return tui.RunResults(client, GetConfig(), store, session)
	},
}

func init() {
	captureCmd.Flags().BoolVar(&plainCapture, "plain", false, "plain text output instead of the results view")
	resultsCmd.Flags().BoolVar(&plainCapture, "plain", false, "plain text output instead of the results view")
	resultsCmd.Flags().BoolVar(&clearResults, "clear", false, "discard the stored capture results and exit")
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(resultsCmd)
}
