package validation

import (
	"testing"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/models"
)

func TestValidateSlot(t *testing.T) {
	valid := []models.SlotRef{{0, 0}, {6, 5}, {2, 4}}
	for _, slot := range valid {
		if err := ValidateSlot(slot); err != nil {
			t.Errorf("ValidateSlot(%v) = %v, want nil", slot, err)
		}
	}

	invalid := []models.SlotRef{{-1, 0}, {7, 0}, {0, -1}, {0, 6}}
	for _, slot := range invalid {
		if err := ValidateSlot(slot); err == nil {
			t.Errorf("ValidateSlot(%v) accepted an out-of-grid slot", slot)
		}
	}
}

func TestValidateSchedule(t *testing.T) {
	ok := models.Schedule{Title: "Math", Time: models.SlotRef{1, 2}}
	if err := ValidateSchedule(ok); err != nil {
		t.Errorf("ValidateSchedule(%+v) = %v", ok, err)
	}

	if err := ValidateSchedule(models.Schedule{Title: "", Time: models.SlotRef{1, 2}}); err == nil {
		t.Error("ValidateSchedule accepted an empty title")
	}
	if err := ValidateSchedule(models.Schedule{Title: "Math", Time: models.SlotRef{9, 0}}); err == nil {
		t.Error("ValidateSchedule accepted an invalid slot")
	}
}

func TestValidateDay(t *testing.T) {
	valid := []calendar.Day{
		{Year: 2024, Month: 1, Day: 29}, // leap February
		{Year: 2023, Month: 1, Day: 28},
		{Year: 2024, Month: 11, Day: 31},
	}
	for _, d := range valid {
		if err := ValidateDay(d); err != nil {
			t.Errorf("ValidateDay(%v) = %v, want nil", d, err)
		}
	}

	invalid := []calendar.Day{
		{Year: 2023, Month: 1, Day: 29}, // non-leap February
		{Year: 2024, Month: 3, Day: 31}, // April has 30
		{Year: 2024, Month: 12, Day: 1}, // month out of range
		{Year: 2024, Month: 0, Day: 0},
	}
	for _, d := range invalid {
		if err := ValidateDay(d); err == nil {
			t.Errorf("ValidateDay(%v) accepted an invalid date", d)
		}
	}
}
