package browserutil

import (
	"os/exec"
	"runtime"
)

// Open launches the platform's default browser on the given target,
// which may be a URL or a local file path.
func Open(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	return cmd.Start()
}
