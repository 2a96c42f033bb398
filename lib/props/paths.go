package props

import (
	"path/filepath"

	"github.com/go-i2p/props/lib/util"
)

// storageLeaf is the directory created under the resolved root to
// hold the backing files.
const storageLeaf = "cfg"

const (
	fileExt       = ".properties"
	defaultSuffix = "_def"
	mainSuffix    = "_main"
)

// resolveStorageDir maps a storage hint to the directory holding the
// two backing files. An empty hint resolves to ./cfg relative to the
// process working directory; any other hint resolves to
// <app-data-root>/<hint>/cfg for the current user.
func resolveStorageDir(hint string) string {
	if hint == "" {
		return storageLeaf
	}
	return filepath.Join(util.AppDataDir(), hint, storageLeaf)
}

// defaultFileName returns the file name holding the persisted
// defaults for a store name.
func defaultFileName(name string) string {
	return name + defaultSuffix + fileExt
}

// mainFileName returns the file name holding the runtime overrides
// for a store name.
func mainFileName(name string) string {
	return name + mainSuffix + fileExt
}
