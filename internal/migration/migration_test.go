package migration

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/models"
)

func TestMigrateTaskFromVersionZero(t *testing.T) {
	// A record persisted before the version field existed: decoding leaves
	// Version at 0 and Time unset.
	raw := `{"key":"a","title":"old","estimated":"1h","finished":true,"date":{"year":2024,"month":2,"day":10}}`
	var task models.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("failed to decode legacy record: %v", err)
	}

	migrated := MigrateTask(task)
	if migrated.Version != 1 {
		t.Errorf("Version = %d, want 1", migrated.Version)
	}
	if migrated.Time != nil {
		t.Errorf("Time = %v, want nil", migrated.Time)
	}
	if migrated.Title != "old" || !migrated.Finished {
		t.Error("migration altered unrelated fields")
	}
}

func TestMigrateTaskIdempotent(t *testing.T) {
	inputs := []models.Task{
		{},
		{Key: "a", Title: "x", Version: 0},
		{Key: "b", Title: "y", Version: 1, Time: &calendar.Time{Hour: 9}},
	}
	for _, task := range inputs {
		once := MigrateTask(task)
		twice := MigrateTask(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("MigrateTask not idempotent for %+v: %+v != %+v", task, once, twice)
		}
	}
}

func TestMigrateTaskCurrentVersionUntouched(t *testing.T) {
	at := &calendar.Time{Hour: 8, Minute: 30}
	task := models.Task{Key: "k", Title: "t", Version: CurrentVersion, Time: at}
	if got := MigrateTask(task); !reflect.DeepEqual(got, task) {
		t.Errorf("MigrateTask changed a current record: %+v", got)
	}
}

func TestMigrateTaskFutureVersion(t *testing.T) {
	// A version beyond the chain gets zero steps applied.
	task := models.Task{Key: "k", Version: CurrentVersion + 3}
	if got := MigrateTask(task); !reflect.DeepEqual(got, task) {
		t.Errorf("MigrateTask changed a future-version record: %+v", got)
	}
}

func TestMigrate(t *testing.T) {
	list := []models.Task{
		{Key: "a", Title: "legacy"},
		{Key: "b", Title: "current", Version: 1},
	}
	migrated := Migrate(list)
	if len(migrated) != 2 {
		t.Fatalf("Migrate returned %d records, want 2", len(migrated))
	}
	if migrated[0].Version != 1 || migrated[1].Version != 1 {
		t.Errorf("versions after Migrate: %d, %d, want 1, 1", migrated[0].Version, migrated[1].Version)
	}
	// The input slice is not mutated.
	if list[0].Version != 0 {
		t.Error("Migrate mutated its input")
	}
}

func TestMigrateEmpty(t *testing.T) {
	if got := Migrate(nil); len(got) != 0 {
		t.Errorf("Migrate(nil) = %v, want empty", got)
	}
	if got := Migrate([]models.Task{}); len(got) != 0 {
		t.Errorf("Migrate(empty) = %v, want empty", got)
	}
}
