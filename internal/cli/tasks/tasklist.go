package tasks

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/tasks"
)

type TaskListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
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
	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Tasks for %s", calendar.FormatDay(date))))
	if len(list) == 0 {
		fmt.Println(cli.DimStyle.Render("  (no tasks)"))
		return nil
	}

	for _, t := range tasks.SortForDisplay(list) {
		mark := "[ ]"
		style := cli.PendingStyle
		if t.Finished {
			mark = "[x]"
			style = cli.FinishedStyle
		}

		line := fmt.Sprintf("  %s %s", mark, t.Title)
		if t.Time != nil {
			line += fmt.Sprintf(" @ %s", calendar.FormatTime(*t.Time))
		}
		if t.Estimated != "" {
			line += fmt.Sprintf(" (~%s)", t.Estimated)
		}
		fmt.Println(style.Render(line) + "  " + cli.KeyStyle.Render(t.Key))
	}
	return nil
}
