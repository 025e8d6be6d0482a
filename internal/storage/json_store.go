package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore persists the whole key-value map as one JSON file. Every Set
// rewrites the file, which is fine at this data volume and keeps the on-disk
// state inspectable.
type JSONStore struct {
	path    string
	entries map[string]string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.entries = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daybook init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.entries = make(map[string]string)
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.entries == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.entries == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.entries[key] = value
	return s.save()
}

func (s *JSONStore) Has(key string) (bool, error) {
	if s.entries == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	_, ok := s.entries[key]
	return ok, nil
}

func (s *JSONStore) All() (map[string]string, error) {
	if s.entries == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	snapshot := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}
	return snapshot, nil
}

func (s *JSONStore) Path() string {
	return s.path
}
