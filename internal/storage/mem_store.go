package storage

import "fmt"

// MemStore is an in-memory Provider used by tests and by the backup
// import dry-run. Reads and writes are counted so callers can assert on
// storage traffic.
type MemStore struct {
	entries map[string]string

	// Reads counts Get calls, Writes counts Set calls.
	Reads  int
	Writes int
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]string)}
}

func (s *MemStore) Init() error { return nil }
func (s *MemStore) Load() error { return nil }

func (s *MemStore) Close() error { return nil }

func (s *MemStore) Get(key string) (string, bool, error) {
	if s.entries == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	s.Reads++
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	if s.entries == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.Writes++
	s.entries[key] = value
	return nil
}

func (s *MemStore) Has(key string) (bool, error) {
	if s.entries == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	_, ok := s.entries[key]
	return ok, nil
}

func (s *MemStore) All() (map[string]string, error) {
	if s.entries == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	snapshot := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}
	return snapshot, nil
}

func (s *MemStore) Path() string {
	return "(in-memory)"
}
