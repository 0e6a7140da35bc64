package chart

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenViewer opens the rendered chart with the OS default image viewer.
// The viewer runs detached; we do not wait for it to close.
func OpenViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open chart viewer: %w", err)
	}
	return nil
}
