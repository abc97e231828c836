package cli

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openInViewer opens path with the platform's default document viewer.
func openInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// sendToPrinter hands path to the platform print spooler.
func sendToPrinter(path string) error {
	switch runtime.GOOS {
	case "darwin", "linux":
		return exec.Command("lp", path).Start()
	case "windows":
		return exec.Command("powershell", "-NoProfile", "Start-Process", "-Verb", "Print", path).Start()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
