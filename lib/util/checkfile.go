package util

import (
	"os"
)

// CheckFileExists reports whether a file or directory exists at fpath.
// Stat errors other than non-existence also count as absent.
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}
