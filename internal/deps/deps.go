// Package deps finds the optional external tools shadescale shells out
// to: notify-send for desktop notifications and the clipboard commands
// used by --copy. None of them is needed to generate a theme.
package deps

import (
	"os/exec"
	"strings"
)

// Status describes one tool as found in PATH
type Status struct {
	Installed bool
	Path      string
	Version   string
}

// Check looks name up in PATH. With versionArgs the tool is run once and
// the first line it prints is kept as Version.
func Check(name string, versionArgs ...string) Status {
	path, err := exec.LookPath(name)
	if err != nil {
		return Status{}
	}

	status := Status{Installed: true, Path: path}
	if len(versionArgs) > 0 {
		status.Version = version(path, versionArgs)
	}
	return status
}

// FirstInstalled returns the index of the first installed tool in names,
// or -1 when none is.
func FirstInstalled(names ...string) (int, Status) {
	for i, name := range names {
		if s := Check(name); s.Installed {
			return i, s
		}
	}
	return -1, Status{}
}

// CheckNotifySend reports whether theme updates can be shown as desktop
// notifications.
func CheckNotifySend() Status {
	return Check("notify-send", "--version")
}

func version(path string, args []string) string {
	out, err := exec.Command(path, args...).Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
