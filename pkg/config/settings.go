package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/liveout/pkg/errors"
)

// ColorMode controls whether styled output carries ANSI escapes.
type ColorMode string

const (
	// ColorAuto keeps the profile detected from the terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces styled output even without a TTY.
	ColorAlways ColorMode = "always"
	// ColorNever strips all styling.
	ColorNever ColorMode = "never"
)

// Settings holds the effective liveout configuration.
type Settings struct {
	// Backend is the backend id used when no explicit selector is
	// given. Empty means pick one from the running shell.
	Backend string `toml:"backend"`

	// Color selects the color mode for styled rendering.
	Color ColorMode `toml:"color"`

	// Verbosity sets the log level: 0 warnings, 1 info, 2 debug,
	// 3 and up trace.
	Verbosity int `toml:"verbosity"`

	// LogFile overrides the log destination. Empty logs to the
	// state directory.
	LogFile string `toml:"log_file"`
}

// Selector returns the backend selector the settings imply: the
// configured id, or nil when the backend should be detected.
func (s *Settings) Selector() any {
	if s.Backend == "" {
		return nil
	}
	return s.Backend
}

// Effective renders the resolved settings as a TOML document in the
// same shape the config file uses.
func (s *Settings) Effective() (string, error) {
	out, err := toml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "rendering settings")
	}
	return string(out), nil
}
