package props

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/magiconair/properties"
	"github.com/samber/oops"
)

// loader reads properties files without ${...} expansion so values
// round-trip byte for byte.
var loader = &properties.Loader{
	Encoding:         properties.UTF8,
	DisableExpansion: true,
}

// readPropsFile loads one backing file into dst, overwriting any
// entry already present under the same key. dst is untouched when the
// read fails.
func readPropsFile(path string, dst map[string]string) error {
	p, err := loader.LoadFile(path)
	if err != nil {
		return oops.Wrapf(err, "reading properties file %s", path)
	}
	for _, key := range p.Keys() {
		if value, ok := p.Get(key); ok {
			dst[key] = value
		}
	}
	return nil
}

// writePropsFile serializes src to path, overwriting whatever is
// there, with a header comment on the first line. Keys are written in
// sorted order so repeated saves of the same map produce identical
// files.
func writePropsFile(path string, src map[string]string, comment string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true

	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, _, err := p.Set(key, src[key]); err != nil {
			return oops.Wrapf(err, "setting key %q", key)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return oops.Wrapf(err, "opening %s for writing", path)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# %s\n", comment); err != nil {
		return oops.Wrapf(err, "writing header to %s", path)
	}
	if _, err := p.Write(f, properties.UTF8); err != nil {
		return oops.Wrapf(err, "writing properties to %s", path)
	}
	return nil
}

// saveComment builds the human-readable header written on every save.
func saveComment() string {
	return "saved on: " + time.Now().Format(time.RFC1123)
}
