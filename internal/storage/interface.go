package storage

import (
	"fmt"
	"strings"
)

// Provider is the key-value capability every store is given. Values are
// strings (JSON-encoded collections); keys are the collection names plus one
// decimal day-index key per loaded day. Providers make no attempt at
// cross-key atomicity: a multi-key flush that fails partway leaves the keys
// written so far in place.
type Provider interface {
	// Init creates the underlying medium. It fails if one already exists.
	Init() error
	// Load opens an existing medium for use.
	Load() error
	Close() error

	// Get returns the value for key. The second return reports presence;
	// an absent key is not an error.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Has(key string) (bool, error)
	// All returns a snapshot of every entry, for whole-store backup.
	All() (map[string]string, error)

	// Path returns the location of the underlying medium.
	Path() string
}

// Open picks a provider from the config path the same way the CLI's --config
// flag is interpreted: a .db or .sqlite extension selects the SQLite backend,
// anything else the single-file JSON backend.
func Open(path string) (Provider, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path must not be empty")
	}
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return NewSQLiteStore(path), nil
	}
	return NewJSONStore(path), nil
}
