package cli

import (
	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/storage"
)

// Context carries the capabilities every command runs against: the opened
// storage provider and the current-date clock. Commands receive it from kong
// via Bind.
type Context struct {
	Store storage.Provider
	Clock calendar.Clock
}

// Today returns the current date from the bound clock.
func (c *Context) Today() calendar.Day {
	return c.Clock()
}

// ResolveDay parses an optional --date flag value, defaulting to today when
// the flag was left empty.
func (c *Context) ResolveDay(flag string) (calendar.Day, error) {
	if flag == "" {
		return c.Today(), nil
	}
	return calendar.ParseDay(flag)
}
