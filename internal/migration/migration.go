// Package migration upgrades persisted task records across schema versions.
//
// A record's version selects where it enters a fixed, ordered chain of steps:
// step i transforms a record at version i to version i+1. Records decoded from
// storage that predate the version field arrive as version 0 (Go's zero value
// at the JSON boundary), so the oldest records enter at the head of the chain
// without any branching on field absence.
package migration

import (
	"github.com/daybook-dev/daybook/internal/logger"
	"github.com/daybook-dev/daybook/internal/models"
)

// Step transforms a task record from one schema version to the next. Steps
// must be pure, total (synthesizing defaults for fields the record lacks),
// and forward-only.
type Step func(models.Task) models.Task

// steps[i] migrates version i to version i+1.
var steps = []Step{
	migrateV0AddTime,
}

// CurrentVersion is the schema version stamped on newly created tasks.
var CurrentVersion = len(steps)

// migrateV0AddTime introduces the optional time-of-day field. Version 0
// records have no time; it is synthesized as unset.
func migrateV0AddTime(t models.Task) models.Task {
	t.Time = nil
	t.Version = 1
	return t
}

// MigrateTask brings a single record to the current version. Records already
// current are returned unchanged. A version beyond the known chain gets zero
// steps applied and is treated as current; there is no downgrade path.
func MigrateTask(t models.Task) models.Task {
	version := t.Version
	if version < 0 {
		version = 0
	}
	if version >= len(steps) {
		if version > CurrentVersion {
			logger.Warn("task record from a future schema version left as-is",
				"key", t.Key, "version", version, "current", CurrentVersion)
		}
		return t
	}
	for _, step := range steps[version:] {
		t = step(t)
	}
	return t
}

// Migrate applies MigrateTask to every record independently.
func Migrate(list []models.Task) []models.Task {
	if len(list) == 0 {
		return list
	}
	migrated := make([]models.Task, len(list))
	for i, t := range list {
		migrated[i] = MigrateTask(t)
	}
	return migrated
}
