// Package memory keeps the free-form daily notes. All entries persist as one
// record; grouping them under their dates is left to the presentation layer,
// as is the rule that an entry edited down to empty content gets removed
// before saving.
package memory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/constants"
	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/storage"
)

// Store binds memory operations to a storage provider, a key generator, and
// a clock for defaulting the entry date.
type Store struct {
	kv     storage.Provider
	newKey func() string
	clock  calendar.Clock
}

func NewStore(kv storage.Provider) *Store {
	return &Store{
		kv:     kv,
		newKey: func() string { return uuid.New().String() },
		clock:  calendar.Now,
	}
}

// WithKeyFunc overrides the key generator, for tests that need stable keys.
func (s *Store) WithKeyFunc(fn func() string) *Store {
	s.newKey = fn
	return s
}

// WithClock overrides the current-date capability.
func (s *Store) WithClock(clock calendar.Clock) *Store {
	s.clock = clock
	return s
}

// Load reads the persisted entries. Absent record means no entries yet.
func (s *Store) Load() ([]models.Memory, error) {
	raw, found, err := s.kv.Get(constants.MemoriesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}
	if !found {
		return []models.Memory{}, nil
	}

	var memories []models.Memory
	if err := json.Unmarshal([]byte(raw), &memories); err != nil {
		return nil, fmt.Errorf("corrupt memory record: %w", err)
	}
	if memories == nil {
		memories = []models.Memory{}
	}
	return memories, nil
}

// Save writes the full list as one record. It persists whatever it is given;
// enforcing "empty content means remove" is the caller's job.
func (s *Store) Save(memories []models.Memory) error {
	data, err := json.Marshal(memories)
	if err != nil {
		return fmt.Errorf("failed to encode memories: %w", err)
	}
	if err := s.kv.Set(constants.MemoriesKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist memories: %w", err)
	}
	return nil
}

// Create appends a new entry with a fresh key. Content may be empty (a new
// entry typically starts blank and goes straight into editing). A zero date
// defaults to today.
func (s *Store) Create(memories []models.Memory, content string, date calendar.Day) []models.Memory {
	if date == (calendar.Day{}) {
		date = s.clock()
	}
	entry := models.Memory{
		Key:     s.newKey(),
		Content: content,
		Date:    date,
	}
	return append(append([]models.Memory{}, memories...), entry)
}

// SortForDisplay orders entries most recent day first; entries sharing a day
// keep their insertion order. It sorts a copy and returns it.
func SortForDisplay(memories []models.Memory) []models.Memory {
	sorted := append([]models.Memory{}, memories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return calendar.DayIndex(sorted[i].Date) > calendar.DayIndex(sorted[j].Date)
	})
	return sorted
}
