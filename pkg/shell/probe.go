package shell

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Probe is the seam between detection logic and the real process
// environment. Tests provide their own implementation.
type Probe interface {
	// LookupEnv mirrors os.LookupEnv.
	LookupEnv(key string) (string, bool)

	// IsTerminal reports whether the file descriptor is attached to
	// a terminal.
	IsTerminal(fd uintptr) bool
}

type systemProbe struct{}

func (systemProbe) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (systemProbe) IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// System returns the probe backed by the real process environment.
func System() Probe {
	return systemProbe{}
}
