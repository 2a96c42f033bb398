package util

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDataDir returns the per-user application data root, the place an
// application is expected to create its own subdirectory in for state
// it writes at runtime.
//
//	windows: %USERPROFILE%\AppData\Local
//	darwin:  $HOME/Library/Application Support
//	other:   $XDG_DATA_HOME, defaulting to $HOME/.local/share
func AppDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(UserHome(), "AppData", "Local")
	case "darwin":
		return filepath.Join(UserHome(), "Library", "Application Support")
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		return filepath.Join(UserHome(), ".local", "share")
	}
}
