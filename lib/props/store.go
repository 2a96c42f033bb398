package props

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/logger"
	"github.com/go-i2p/props/lib/util"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Store is a named, file-backed, two-tier key-value store. The
// default tier is declared by a DefaultsProvider and frozen once
// loading completes; the runtime tier is editable afterwards and
// falls back to the default tier on lookup misses.
//
// A Store is not safe for concurrent use.
type Store struct {
	name     string
	provider DefaultsProvider

	state State

	defaults map[string]string
	runtime  map[string]string

	storageDir  string
	defaultFile string
	mainFile    string

	lastViolation string
}

// New creates a Store named after the provider's concrete type. Use
// NewNamed when the provider is a ProviderFunc or when two provider
// types would collide on a type name.
func New(provider DefaultsProvider) *Store {
	name := providerName(provider)
	if name == "" || name == "ProviderFunc" {
		log.WithField("name", name).Warn("provider type carries no usable name, use NewNamed to avoid file collisions")
	}
	return NewNamed(name, provider)
}

// NewNamed creates a Store with an explicit name. The name determines
// the backing file names <name>_def.properties and
// <name>_main.properties.
func NewNamed(name string, provider DefaultsProvider) *Store {
	return &Store{
		name:     name,
		provider: provider,
	}
}

// Initialize resolves the storage location, creates the directory and
// whichever backing files are missing, persists the provider's
// defaults, and loads both files into memory. Until it returns only
// SetDefault is legal; afterwards only SetValue is.
//
// An empty hint stores under ./cfg; a non-empty hint stores under the
// per-user application data root (see util.AppDataDir). Directory and
// file creation failures and default-persist failures are returned;
// read failures during the final load are logged and swallowed.
//
// Initialize may be called again on the same Store. Each call rebuilds
// both in-memory tiers from the provider and from disk.
func (s *Store) Initialize(hint string) error {
	s.state = StateBootstrapping
	s.defaults = make(map[string]string)
	s.runtime = nil
	s.lastViolation = ""

	s.storageDir = resolveStorageDir(hint)
	s.defaultFile = filepath.Join(s.storageDir, defaultFileName(s.name))
	s.mainFile = filepath.Join(s.storageDir, mainFileName(s.name))

	if err := s.ensureStorage(); err != nil {
		return err
	}

	s.provider.PopulateDefaults(s)

	if err := writePropsFile(s.defaultFile, s.defaults, saveComment()); err != nil {
		return err
	}

	s.load()
	return nil
}

// ensureStorage creates the storage directory and whichever backing
// files are missing. Existing directories and files are left alone.
func (s *Store) ensureStorage() error {
	if !util.CheckFileExists(s.storageDir) {
		if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
			return oops.Wrapf(err, "creating storage directory %s", s.storageDir)
		}
	}

	for _, path := range []string{s.defaultFile, s.mainFile} {
		if util.CheckFileExists(path) {
			continue
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return oops.Wrapf(err, "creating %s", path)
		}
		f.Close()
	}
	return nil
}

// load pulls both backing files into memory. Disk wins over whatever
// PopulateDefaults put in the default tier; the runtime tier starts
// empty and falls back to defaults on lookup misses. Read failures
// are logged, not returned, and the affected tier keeps its prior
// state.
func (s *Store) load() {
	if err := readPropsFile(s.defaultFile, s.defaults); err != nil {
		log.WithError(err).Warn("failed to read default properties, keeping in-memory defaults")
	}

	s.runtime = make(map[string]string)
	if err := readPropsFile(s.mainFile, s.runtime); err != nil {
		log.WithError(err).Warn("failed to read main properties, falling back to defaults")
	}

	log.WithFields(logger.Fields{
		"at":       "load",
		"store":    s.name,
		"dir":      s.storageDir,
		"defaults": len(s.defaults),
		"values":   len(s.runtime),
	}).Debug("properties loaded")

	s.state = StateLoaded
}

// SetDefault records a default entry. It is only legal while
// Initialize is running the provider's PopulateDefaults; at any other
// point the mutation is dropped with a logged diagnostic.
func (s *Store) SetDefault(key, value string) {
	if s.state != StateBootstrapping {
		s.reject("SetDefault", key, "defaults can only be declared from PopulateDefaults")
		return
	}
	s.defaults[key] = value
}

// SetValue records a runtime entry, shadowing any default under the
// same key. It is only legal once Initialize has completed; before
// that the mutation is dropped with a logged diagnostic.
func (s *Store) SetValue(key, value string) {
	if s.state != StateLoaded {
		s.reject("SetValue", key, "store is not initialized")
		return
	}
	s.runtime[key] = value
}

// Get returns the runtime value for key, falling back to the default
// value, and finally to the empty string. It never fails; reading a
// store that was never initialized only ever yields "".
func (s *Store) Get(key string) string {
	if value, ok := s.runtime[key]; ok {
		return value
	}
	if value, ok := s.defaults[key]; ok {
		return value
	}
	return ""
}

// Save persists the runtime tier's own entries to the main file,
// overwriting it, with a timestamp header. Defaults that were never
// overridden stay out of the file. Save is never called implicitly.
func (s *Store) Save() error {
	if s.state != StateLoaded {
		return oops.Errorf("store %q is not initialized", s.name)
	}
	return writePropsFile(s.mainFile, s.runtime, saveComment())
}

// reject logs a dropped mutation and records it for inspection. The
// violation is deliberately non-fatal: the caller gets a diagnostic,
// not an error, and the store is left unchanged.
func (s *Store) reject(op, key, reason string) {
	s.lastViolation = op + " " + key + ": " + reason
	log.WithFields(logger.Fields{
		"at":     op,
		"store":  s.name,
		"key":    key,
		"state":  s.state.String(),
		"reason": reason,
	}).Error("mutation rejected")
}

// Name returns the store name the backing file names derive from.
func (s *Store) Name() string { return s.name }

// StorageDir returns the resolved directory holding both backing
// files. It is empty until Initialize has run.
func (s *Store) StorageDir() string { return s.storageDir }

// Lifecycle returns the store's current lifecycle state.
func (s *Store) Lifecycle() State { return s.state }

// DefaultCount returns the number of entries in the default tier.
func (s *Store) DefaultCount() int { return len(s.defaults) }

// Len returns the number of runtime entries set so far, not counting
// defaults visible through fallback.
func (s *Store) Len() int { return len(s.runtime) }

// LastViolation returns the diagnostic for the most recent rejected
// mutation, or "" when none has occurred since the last Initialize.
func (s *Store) LastViolation() string { return s.lastViolation }
