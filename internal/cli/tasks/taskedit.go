package tasks

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/tasks"
)

// TaskEditCmd rewrites fields of one task. Setting --title to the empty
// string deletes the task: an empty title is the tombstone the task store
// filters out when the day is persisted.
type TaskEditCmd struct {
	Key       string  `arg:"" help:"Key of the task to edit."`
	Date      string  `short:"d" help:"Day the task belongs to (YYYY-MM-DD). Defaults to today."`
	Title     *string `help:"New title. An empty title deletes the task."`
	Estimated *string `short:"e" help:"New duration estimate."`
	Time      *string `short:"t" help:"New time of day (HH:MM)."`
	ClearTime bool    `help:"Remove the time of day."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Title == nil && c.Estimated == nil && c.Time == nil && !c.ClearTime {
		return fmt.Errorf("nothing to change; pass --title, --estimated, --time, or --clear-time")
	}
	if c.Time != nil && c.ClearTime {
		return fmt.Errorf("--time and --clear-time are mutually exclusive")
	}
	if c.Time != nil {
		if _, err := calendar.ParseTime(*c.Time); err != nil {
			return err
		}
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	store := tasks.NewStore(ctx.Store)
	ts, err := store.Load(tasks.Tasks{}, date)
	if err != nil {
		return err
	}

	list, _ := store.Get(ts, date)
	found := false
	deleted := false
	for i := range list {
		if list[i].Key != c.Key {
			continue
		}
		found = true
		if c.Title != nil {
			list[i].Title = *c.Title
			deleted = *c.Title == ""
		}
		if c.Estimated != nil {
			list[i].Estimated = *c.Estimated
		}
		if c.Time != nil {
			t, err := calendar.ParseTime(*c.Time)
			if err != nil {
				return err
			}
			list[i].Time = &t
		}
		if c.ClearTime {
			list[i].Time = nil
		}
		break
	}
	if !found {
		return fmt.Errorf("no task with key %s on that day", c.Key)
	}

	ts = store.Update(ts, list, date)
	if err := store.Save(ts); err != nil {
		return err
	}

	if deleted {
		fmt.Println("Deleted.")
	} else {
		fmt.Println("Updated.")
	}
	return nil
}
