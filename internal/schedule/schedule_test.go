package schedule

import (
	"testing"

	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/storage"
)

func TestLoadAbsent(t *testing.T) {
	schedules, err := Load(storage.NewMemStore())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(schedules) != 0 {
		t.Errorf("got %d schedules from an empty store", len(schedules))
	}
}

func TestLoadCorrupt(t *testing.T) {
	kv := storage.NewMemStore()
	if err := kv.Set("schedules", "not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(kv); err == nil {
		t.Error("Load accepted a corrupt schedule record")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := storage.NewMemStore()
	schedules := []models.Schedule{
		{Title: "Algorithms", Location: "Hall 2", Time: models.SlotRef{0, 1}},
		{Title: "Gym", Time: models.SlotRef{2, 4}},
	}
	if err := Save(kv, schedules); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(kv)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d schedules, want 2", len(loaded))
	}
	if loaded[1].Time != (models.SlotRef{2, 4}) {
		t.Errorf("slot survived as %v", loaded[1].Time)
	}
}

func TestUpsertReplacesSlot(t *testing.T) {
	slot := models.SlotRef{2, 4}
	schedules := Upsert(nil, models.Schedule{Title: "Physics", Time: slot})
	schedules = Upsert(schedules, models.Schedule{Title: "Chemistry", Time: slot})

	count := 0
	for _, s := range schedules {
		if s.Time == slot {
			count++
			if s.Title != "Chemistry" {
				t.Errorf("slot holds %q, want the latest title", s.Title)
			}
		}
	}
	if count != 1 {
		t.Errorf("%d entries at one slot, want 1", count)
	}
}

func TestUpsertKeepsOtherSlots(t *testing.T) {
	schedules := Upsert(nil, models.Schedule{Title: "A", Time: models.SlotRef{0, 0}})
	schedules = Upsert(schedules, models.Schedule{Title: "B", Time: models.SlotRef{0, 1}})
	if len(schedules) != 2 {
		t.Errorf("got %d schedules, want 2", len(schedules))
	}
}

func TestDelete(t *testing.T) {
	slot := models.SlotRef{1, 3}
	schedules := Upsert(nil, models.Schedule{Title: "A", Time: slot})

	// Matching the slot is enough; the other fields are ignored.
	schedules = Delete(schedules, models.Schedule{Title: "different", Time: slot})
	if len(schedules) != 0 {
		t.Errorf("got %d schedules after Delete, want 0", len(schedules))
	}

	// Deleting an unoccupied slot is a no-op.
	schedules = Upsert(schedules, models.Schedule{Title: "B", Time: models.SlotRef{5, 5}})
	schedules = Delete(schedules, models.Schedule{Time: models.SlotRef{6, 0}})
	if len(schedules) != 1 {
		t.Errorf("Delete of an empty slot removed %d entries", 1-len(schedules))
	}
}

func TestAt(t *testing.T) {
	slot := models.SlotRef{3, 2}
	schedules := Upsert(nil, models.Schedule{Title: "Lab", Time: slot})

	if entry, ok := At(schedules, slot); !ok || entry.Title != "Lab" {
		t.Errorf("At(%v) = (%+v, %v)", slot, entry, ok)
	}
	if _, ok := At(schedules, models.SlotRef{0, 0}); ok {
		t.Error("At found an entry in an empty slot")
	}
}
