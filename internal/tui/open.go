package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openExternal hands a URL to the platform's default viewer. This is the
// fallback rendering path: it trades page navigation for the guarantee that
// the document is still viewable.
func openExternal(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching system viewer: %w", err)
	}
	// Fire and forget; reap the child without blocking the UI.
	go cmd.Wait()
	return nil
}
