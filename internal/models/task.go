package models

import "github.com/daybook-dev/daybook/internal/calendar"

// Task is one row of a day's task list. Key is assigned by the task store at
// creation and never changes. Time is persisted as JSON null when unset, so it
// stays a pointer with no omitempty.
//
// A task whose Title is empty is treated as deleted when a day's list is
// persisted through the task store's Update.
type Task struct {
	Key       string         `json:"key"`
	Title     string         `json:"title"`
	Estimated string         `json:"estimated"`
	Time      *calendar.Time `json:"time"`
	Finished  bool           `json:"finished"`
	Date      calendar.Day   `json:"date"`
	Version   int            `json:"version"`
}
