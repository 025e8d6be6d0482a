// Package validation holds the business rules the stores deliberately do not
// enforce. The stores accept any well-typed value; the consuming surface is
// expected to run these checks before mutating.
package validation

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/constants"
	"github.com/daybook-dev/daybook/internal/models"
)

// ValidateSlot checks that a (weekday, period) pair is inside the weekly
// grid.
func ValidateSlot(slot models.SlotRef) error {
	if slot.Weekday() < 0 || slot.Weekday() >= constants.WeekdaysPerWeek {
		return fmt.Errorf("weekday must be between 0 and %d, got %d", constants.WeekdaysPerWeek-1, slot.Weekday())
	}
	if slot.Period() < 0 || slot.Period() >= constants.PeriodsPerDay {
		return fmt.Errorf("period must be between 0 and %d, got %d", constants.PeriodsPerDay-1, slot.Period())
	}
	return nil
}

// ValidateSchedule checks a schedule entry before an upsert: a valid slot and
// a non-empty title. The store itself accepts anything; this is the caller's
// gate.
func ValidateSchedule(entry models.Schedule) error {
	if err := ValidateSlot(entry.Time); err != nil {
		return err
	}
	if entry.Title == "" {
		return fmt.Errorf("schedule title must not be empty")
	}
	return nil
}

// ValidateDay checks that a date names a real calendar day, leap years
// included. The calendar functions themselves are total and unvalidated;
// this is where out-of-range input gets rejected.
func ValidateDay(d calendar.Day) error {
	if d.Month < 0 || d.Month > 11 {
		return fmt.Errorf("month must be between 0 and 11, got %d", d.Month)
	}
	max := calendar.MonthLengths(d.Year)[d.Month]
	if d.Day < 1 || d.Day > max {
		return fmt.Errorf("day must be between 1 and %d for that month, got %d", max, d.Day)
	}
	return nil
}
