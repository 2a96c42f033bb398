package util

import (
	"os"
)

// UserHome returns the current user's home directory.
// Falls back to $HOME (or %USERPROFILE% on Windows) if os.UserHomeDir
// fails, and as a last resort uses the current working directory so
// that containerized environments without $HOME can still operate.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv("HOME"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
			return home
		}
		if home := os.Getenv("USERPROFILE"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
			return home
		}
		// Preferable to panicking during startup: the storage
		// directory ends up relative to wherever the process runs.
		if wd, wdErr := os.Getwd(); wdErr == nil {
			log.WithError(err).Warn("os.UserHomeDir and $HOME unavailable; falling back to working directory")
			return wd
		}
		panic("props: unable to determine home directory; set $HOME environment variable")
	}

	return homeDir
}
