// Package deps looks up the external helper programs recetin shells out to.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Requirement names one external program.
type Requirement struct {
	Name    string
	Command string
}

// Status reports whether a requirement resolved on PATH.
type Status struct {
	Name      string
	Command   string
	Path      string
	Available bool
	Detail    string
}

// CheckBinaries resolves every requirement and reports availability in order.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, check(req))
	}
	return results
}

// FirstAvailable returns the first requirement that resolves.
func FirstAvailable(requirements []Requirement) (Status, bool) {
	for _, req := range requirements {
		if status := check(req); status.Available {
			return status, true
		}
	}
	return Status{}, false
}

// ClipboardHelpers lists the programs the clipboard library can drive on
// this platform, in the order it tries them.
func ClipboardHelpers() []Requirement {
	switch runtime.GOOS {
	case "darwin":
		return []Requirement{{Name: "pbcopy", Command: "pbcopy"}}
	case "windows":
		return nil
	}
	helpers := []Requirement{
		{Name: "xsel", Command: "xsel"},
		{Name: "xclip", Command: "xclip"},
		{Name: "termux", Command: "termux-clipboard-set"},
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		helpers = append([]Requirement{{Name: "wl-clipboard", Command: "wl-copy"}}, helpers...)
	}
	return helpers
}

func check(req Requirement) Status {
	cmd := strings.TrimSpace(req.Command)
	status := Status{Name: req.Name, Command: cmd}
	if cmd == "" {
		status.Detail = "command not configured"
		return status
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", cmd)
		return status
	}
	status.Path = path
	status.Available = true
	return status
}
