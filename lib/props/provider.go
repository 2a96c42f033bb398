package props

import (
	"reflect"
)

// DefaultsProvider declares the default key schema for a Store. Every
// owner supplies its own implementation; PopulateDefaults is invoked
// exactly once per Initialize and must only call SetDefault on the
// store it is handed.
type DefaultsProvider interface {
	PopulateDefaults(s *Store)
}

// ProviderFunc adapts a plain function to DefaultsProvider. Stores
// built around a ProviderFunc should be created with NewNamed: the
// adapter type carries no identity of its own, so every ProviderFunc
// owner would otherwise collide on the same pair of backing files.
type ProviderFunc func(s *Store)

// PopulateDefaults calls f.
func (f ProviderFunc) PopulateDefaults(s *Store) { f(s) }

// providerName derives the store name from the provider's concrete
// type, stripping pointer indirections. The name keys the backing
// file names, so two distinct provider types only share files when
// they share a type name.
func providerName(p DefaultsProvider) string {
	t := reflect.TypeOf(p)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
