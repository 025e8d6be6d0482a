package tasks

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/tasks"
)

type TaskAddCmd struct {
	Title     string `arg:"" help:"Task title."`
	Date      string `short:"d" help:"Day the task belongs to (YYYY-MM-DD). Defaults to today."`
	Estimated string `short:"e" help:"Free-form duration estimate, e.g. '2h' or 'an afternoon'."`
	Time      string `short:"t" help:"Time of day (HH:MM)."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if c.Time != "" {
		if _, err := calendar.ParseTime(c.Time); err != nil {
			return err
		}
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	var at *calendar.Time
	if c.Time != "" {
		t, err := calendar.ParseTime(c.Time)
		if err != nil {
			return err
		}
		at = &t
	}

	store := tasks.NewStore(ctx.Store)
	ts, err := store.Load(tasks.Tasks{}, date)
	if err != nil {
		return err
	}

	ts = store.Create(ts, tasks.Draft{
		Title:     c.Title,
		Estimated: c.Estimated,
		Time:      at,
		Date:      date,
	})
	if err := store.Save(ts); err != nil {
		return err
	}

	fmt.Printf("Added task for %s: %s\n", calendar.FormatDay(date), c.Title)
	return nil
}
