package models

import "github.com/daybook-dev/daybook/internal/calendar"

// Memory is a free-text note stamped with a date. Entries are independent;
// grouping by day is a presentation concern. An entry edited down to empty
// content is removed by the consuming layer before saving.
type Memory struct {
	Key     string       `json:"key"`
	Content string       `json:"content"`
	Date    calendar.Day `json:"date"`
}
