// Package schedule maintains the weekly class schedule: a flat list of
// entries identified by their (weekday, period) slot. The whole list is one
// persisted record; there is no per-day partitioning and no schema
// versioning (only task records are versioned).
package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-dev/daybook/internal/constants"
	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/storage"
)

// Load reads the persisted schedule list. An absent record is an empty
// schedule; a present but unparseable one is an error.
func Load(kv storage.Provider) ([]models.Schedule, error) {
	raw, found, err := kv.Get(constants.SchedulesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	if !found {
		return []models.Schedule{}, nil
	}

	var schedules []models.Schedule
	if err := json.Unmarshal([]byte(raw), &schedules); err != nil {
		return nil, fmt.Errorf("corrupt schedule record: %w", err)
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	return schedules, nil
}

// Save writes the full list as one record.
func Save(kv storage.Provider, schedules []models.Schedule) error {
	data, err := json.Marshal(schedules)
	if err != nil {
		return fmt.Errorf("failed to encode schedules: %w", err)
	}
	if err := kv.Set(constants.SchedulesKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist schedules: %w", err)
	}
	return nil
}

// Upsert returns the list with entry installed at its slot, replacing any
// existing entry there. At most one entry per slot survives. Rejecting an
// empty title is the caller's contract, not enforced here.
func Upsert(schedules []models.Schedule, entry models.Schedule) []models.Schedule {
	return append(Delete(schedules, entry), entry)
}

// Delete returns the list without the entry at entry's slot. Only the slot is
// matched; the other fields are ignored. Deleting an unoccupied slot is a
// no-op.
func Delete(schedules []models.Schedule, entry models.Schedule) []models.Schedule {
	kept := make([]models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.Time != entry.Time {
			kept = append(kept, s)
		}
	}
	return kept
}

// At returns the entry occupying the given slot, if any.
func At(schedules []models.Schedule, slot models.SlotRef) (models.Schedule, bool) {
	for _, s := range schedules {
		if s.Time == slot {
			return s, true
		}
	}
	return models.Schedule{}, false
}
