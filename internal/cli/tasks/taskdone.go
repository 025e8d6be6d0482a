package tasks

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/tasks"
)

type TaskDoneCmd struct {
	Key  string `arg:"" help:"Key of the task to toggle."`
	Date string `short:"d" help:"Day the task belongs to (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
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
	for i := range list {
		if list[i].Key == c.Key {
			list[i].Finished = !list[i].Finished
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no task with key %s on that day", c.Key)
	}

	ts = store.Update(ts, list, date)
	if err := store.Save(ts); err != nil {
		return err
	}

	fmt.Println("Toggled.")
	return nil
}
