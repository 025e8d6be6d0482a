package constants

const (
	AppName           = "daybook"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/daybook/daybook.json"

	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateFormat is the standard date format accepted on the command line (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)

// Storage keys for the collections persisted as a single record each.
// Per-day task lists are keyed by their decimal day index instead.
const (
	SchedulesKey = "schedules"
	MemoriesKey  = "memories"
)

const (
	// WeekdaysPerWeek bounds the first component of a schedule slot (0 = Monday).
	WeekdaysPerWeek = 7
	// PeriodsPerDay bounds the second component of a schedule slot.
	PeriodsPerDay = 6
)
