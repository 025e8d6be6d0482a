package system

import (
	"testing"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/storage"
)

func TestAmbiguousDayKey(t *testing.T) {
	// Dec 27 2024 and Jan 2 2025 encode to the same key; both sides of the
	// boundary must be flagged.
	late := calendar.DayIndex(calendar.Day{Year: 2024, Month: 11, Day: 27})
	early := calendar.DayIndex(calendar.Day{Year: 2025, Month: 0, Day: 2})
	if late != early {
		t.Fatalf("expected colliding keys, got %d and %d", late, early)
	}
	if !ambiguousDayKey(late) {
		t.Errorf("ambiguousDayKey(%d) = false for a colliding key", late)
	}

	for day := 26; day <= 31; day++ {
		key := calendar.DayIndex(calendar.Day{Year: 2023, Month: 11, Day: day})
		if !ambiguousDayKey(key) {
			t.Errorf("ambiguousDayKey(%d) = false for Dec %d", key, day)
		}
	}

	safe := []calendar.Day{
		{Year: 2024, Month: 2, Day: 10},
		{Year: 2024, Month: 11, Day: 25},
		{Year: 2025, Month: 0, Day: 7},
	}
	for _, d := range safe {
		if key := calendar.DayIndex(d); ambiguousDayKey(key) {
			t.Errorf("ambiguousDayKey(%d) = true for unambiguous day %v", key, d)
		}
	}
}

func TestAmbiguousDayKeys(t *testing.T) {
	kv := storage.NewMemStore()
	colliding := calendar.DayIndex(calendar.Day{Year: 2024, Month: 11, Day: 27})
	plain := calendar.DayIndex(calendar.Day{Year: 2024, Month: 2, Day: 10})

	seed := map[string]string{
		"368":       "[]", // the colliding key, spelled out
		"72":        "[]",
		"schedules": "not a day key",
		"memories":  "not a day key",
	}
	for k, v := range seed {
		if err := kv.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if colliding != 368 || plain != 72 {
		t.Fatalf("seed keys drifted: colliding = %d, plain = %d", colliding, plain)
	}

	keys, err := ambiguousDayKeys(&cli.Context{Store: kv})
	if err != nil {
		t.Fatalf("ambiguousDayKeys returned error: %v", err)
	}
	if len(keys) != 1 || keys[0] != colliding {
		t.Errorf("ambiguousDayKeys = %v, want [%d]", keys, colliding)
	}
}
