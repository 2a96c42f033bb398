// Package props provides a named, file-backed, two-tier key-value
// configuration store.
//
// # Default and Main Properties
//
// Each Store owns two flat properties files in its storage directory,
// named after the owner: <Name>_def.properties and
// <Name>_main.properties.
//
// Default file: the baseline key set declared by the owner's
// DefaultsProvider. It is rewritten from the provider on every
// Initialize, so its on-disk content always matches the current
// schema of default keys.
//
// Main file: the runtime-editable values. Lookups that miss the main
// set fall back to the default set, so the main file only ever holds
// keys a caller explicitly overrode. It is written only when the
// caller asks for it via Save.
//
// # Lifecycle
//
// A Store moves through three states: Unconfigured (before
// Initialize), Bootstrapping (inside Initialize, while the provider
// declares defaults), and Loaded (both files read into memory).
// Defaults can only be declared while Bootstrapping; runtime values
// can only be set once Loaded. Mutations attempted in the wrong state
// are dropped with a logged diagnostic rather than applied.
//
// The store is not safe for concurrent use; all operations are
// blocking calls on the calling goroutine, and the two files are not
// protected against concurrent writers in other processes.
package props
