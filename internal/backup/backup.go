// Package backup serializes the entire key-value store to a single JSON
// object and restores it by writing every entry back. It operates below the
// collection stores, so it round-trips keys it knows nothing about.
package backup

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-dev/daybook/internal/storage"
)

// Export dumps every stored entry as one JSON object, key to string value.
func Export(kv storage.Provider) (string, error) {
	entries, err := kv.All()
	if err != nil {
		return "", fmt.Errorf("failed to read store for export: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	return string(data), nil
}

// Import restores a backup produced by Export. Every value must be a string;
// a non-string value fails the restore with a descriptive error. Keys are
// written independently in encounter order with no rollback, so a failure
// partway leaves earlier keys already restored.
func Import(kv storage.Provider, data string) error {
	var entries map[string]interface{}
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}

	for key, value := range entries {
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("backup value for key %q should be a string, got %T", key, value)
		}
		if err := kv.Set(key, text); err != nil {
			return fmt.Errorf("failed to restore key %q: %w", key, err)
		}
	}
	return nil
}
