// Package tasks implements the per-day task collection. A day's list lives
// under its own storage key (the decimal day index) and is loaded lazily the
// first time that day is visited. Operations follow an immutable-update
// discipline: each returns a new collection value and leaves its input alone,
// so the consuming layer can hold snapshots freely.
package tasks

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/logger"
	"github.com/daybook-dev/daybook/internal/migration"
	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/storage"
)

// Tasks maps a day index to that day's ordered task list. Presence of a key
// means the day has been loaded; a loaded-but-empty day holds an empty list.
// That distinction is what keeps Load from re-reading storage.
type Tasks map[int][]models.Task

// Draft is a task as the caller describes it before the store assigns
// identity and schema version.
type Draft struct {
	Title     string
	Estimated string
	Time      *calendar.Time
	Date      calendar.Day
}

// Store binds the task operations to a storage provider and a key generator.
// It holds no collection state of its own; the caller owns the Tasks value
// and passes it back on every call.
type Store struct {
	kv     storage.Provider
	newKey func() string

	// RecoverCorrupt makes Load treat an unparseable day record as an empty
	// day instead of failing. Off by default: corrupt data is surfaced, not
	// silently discarded.
	RecoverCorrupt bool
}

func NewStore(kv storage.Provider) *Store {
	return &Store{
		kv:     kv,
		newKey: func() string { return uuid.New().String() },
	}
}

// WithKeyFunc overrides the key generator, for tests that need stable keys.
func (s *Store) WithKeyFunc(fn func() string) *Store {
	s.newKey = fn
	return s
}

// Load makes sure date's list is present in the collection. If the day index
// is already a key this is a no-op returning ts unchanged, with no storage
// read. Otherwise the persisted list is read (absent means empty), run
// through the migration chain, written back in migrated form, and the
// extended collection is returned.
func (s *Store) Load(ts Tasks, date calendar.Day) (Tasks, error) {
	index := calendar.DayIndex(date)
	if _, ok := ts[index]; ok {
		return ts, nil
	}

	key := strconv.Itoa(index)
	raw, found, err := s.kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for %s: %w", calendar.FormatDay(date), err)
	}

	var list []models.Task
	if found {
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			if !s.RecoverCorrupt {
				return nil, fmt.Errorf("corrupt task record for %s: %w", calendar.FormatDay(date), err)
			}
			logger.Warn("discarding corrupt task record", "day", calendar.FormatDay(date), "error", err)
			list = nil
		}
	}
	if list == nil {
		list = []models.Task{}
	}

	list = migration.Migrate(list)
	if err := s.persistDay(index, list); err != nil {
		return nil, err
	}

	next := ts.clone()
	next[index] = list
	return next, nil
}

// Create assigns the draft a fresh key and the current schema version and
// appends it to its day's list, creating the list if the day has none yet.
// Nothing is persisted; the caller flushes with Save when it wants to.
func (s *Store) Create(ts Tasks, draft Draft) Tasks {
	index := calendar.DayIndex(draft.Date)
	task := models.Task{
		Key:       s.newKey(),
		Title:     draft.Title,
		Estimated: draft.Estimated,
		Time:      draft.Time,
		Finished:  false,
		Date:      draft.Date,
		Version:   migration.CurrentVersion,
	}

	next := ts.clone()
	next[index] = append(append([]models.Task{}, ts[index]...), task)
	return next
}

// Update replaces date's entire list with the given one, dropping every entry
// whose title is empty — an empty title is the caller's tombstone for "delete
// this row". The entries' own Date fields are not cross-checked against date;
// keeping them consistent is the caller's responsibility.
func (s *Store) Update(ts Tasks, list []models.Task, date calendar.Day) Tasks {
	kept := make([]models.Task, 0, len(list))
	for _, t := range list {
		if t.Title != "" {
			kept = append(kept, t)
		}
	}

	next := ts.clone()
	next[calendar.DayIndex(date)] = kept
	return next
}

// Save flushes every loaded day to storage, one record per day key. Writes
// happen per key with no cross-key atomicity; the first failure aborts the
// flush and is returned.
func (s *Store) Save(ts Tasks) error {
	for index, list := range ts {
		if err := s.persistDay(index, list); err != nil {
			return err
		}
	}
	return nil
}

// Get returns date's list and whether that day has been loaded. A loaded day
// with no tasks yields an empty list and true; an unloaded day yields false.
func (s *Store) Get(ts Tasks, date calendar.Day) ([]models.Task, bool) {
	list, ok := ts[calendar.DayIndex(date)]
	return list, ok
}

func (s *Store) persistDay(index int, list []models.Task) error {
	if list == nil {
		list = []models.Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode tasks for day %d: %w", index, err)
	}
	if err := s.kv.Set(strconv.Itoa(index), string(data)); err != nil {
		return fmt.Errorf("failed to persist tasks for day %d: %w", index, err)
	}
	return nil
}

func (ts Tasks) clone() Tasks {
	next := make(Tasks, len(ts)+1)
	for k, v := range ts {
		next[k] = v
	}
	return next
}

// SortForDisplay orders a day's list for presentation: unfinished tasks
// first, otherwise stable. It sorts a copy and returns it.
func SortForDisplay(list []models.Task) []models.Task {
	sorted := append([]models.Task{}, list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return !sorted[i].Finished && sorted[j].Finished
	})
	return sorted
}
