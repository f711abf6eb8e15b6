// Package paths provides centralized path handling for liveout.
// It implements XDG Base Directory specification compliance and
// honors environment overrides so tests and sandboxed setups can
// relocate everything.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for liveout
	EnvConfigDir = "LIVEOUT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for liveout
	EnvStateDir = "LIVEOUT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directory and file names
const (
	// AppDirName is the directory name for liveout-specific files
	AppDirName = "liveout"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "liveout.toml"

	// LogFileName is the name of the log file
	LogFileName = "liveout.log"
)

// ConfigDir returns the directory holding liveout's configuration file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the full path of the configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for runtime state such as log files
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the full path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
