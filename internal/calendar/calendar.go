package calendar

import (
	"fmt"
	"time"

	"github.com/daybook-dev/daybook/internal/constants"
)

// EpochYear anchors the day index.
const EpochYear = 2024

// Day is a calendar date with no time-of-day component. Month is 0-based
// (January = 0), matching the persisted record format.
type Day struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Time is a time-of-day attached to a task. Carried as a pointer on records
// because tasks without a set time persist it as JSON null.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Clock produces today's date. Injected into stores so tests can pin the day.
type Clock func() Day

// Now is the production clock.
func Now() Day {
	return FromTime(time.Now())
}

// FromTime converts a time.Time to a Day in its location.
func FromTime(t time.Time) Day {
	return Day{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MonthLengths returns the number of days in each month of the given year,
// indexed by 0-based month.
func MonthLengths(year int) [12]int {
	feb := 28
	if IsLeapYear(year) {
		feb = 29
	}
	return [12]int{31, feb, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
}

// NextDay steps one day forward, rolling over month and year boundaries.
func NextDay(d Day) Day {
	lengths := MonthLengths(d.Year)
	if d.Day == lengths[d.Month] {
		if d.Month == 11 {
			return Day{Year: d.Year + 1, Month: 0, Day: 1}
		}
		return Day{Year: d.Year, Month: d.Month + 1, Day: 1}
	}
	return Day{Year: d.Year, Month: d.Month, Day: d.Day + 1}
}

// PreviousDay steps one day backward, the inverse of NextDay.
func PreviousDay(d Day) Day {
	if d.Day == 1 {
		if d.Month == 0 {
			return Day{Year: d.Year - 1, Month: 11, Day: 31}
		}
		return Day{Year: d.Year, Month: d.Month - 1, Day: MonthLengths(d.Year)[d.Month-1]}
	}
	return Day{Year: d.Year, Month: d.Month, Day: d.Day - 1}
}

// DayIndex encodes a Day as an integer storage key. The encoding is fixed by
// the persisted data and must not change. It increases with the date within a
// year but is not contiguous (months shorter than 31 days leave gaps) and not
// monotonic across year boundaries: the in-year part reaches 372 for late
// December while a year step adds only 366, so Dec 26-31 of one year shares
// keys with Jan 1-6 of the next. It must never be used for distance
// arithmetic or ordering across years. No validation is performed; callers
// are responsible for valid dates.
func DayIndex(d Day) int {
	return (d.Year-EpochYear)*366 + d.Month*31 + d.Day
}

// FormatDay renders a Day in the standard YYYY-MM-DD form.
func FormatDay(d Day) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return FromTime(t), nil
}

// FormatTime renders a time-of-day as zero-padded HH:MM.
func FormatTime(t Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime parses an HH:MM string into a Time.
func ParseTime(s string) (Time, error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return Time{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	return Time{Hour: t.Hour(), Minute: t.Minute()}, nil
}
