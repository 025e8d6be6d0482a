package memories

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/memory"
)

type MemoryAddCmd struct {
	Content string `arg:"" optional:"" help:"Note content. May be empty; edit it later."`
	Date    string `short:"d" help:"Day to stamp the note with (YYYY-MM-DD). Defaults to today."`
}

func (c *MemoryAddCmd) Run(ctx *cli.Context) error {
	store := memory.NewStore(ctx.Store).WithClock(ctx.Clock)
	memories, err := store.Load()
	if err != nil {
		return err
	}

	var date calendar.Day
	if c.Date != "" {
		date, err = calendar.ParseDay(c.Date)
		if err != nil {
			return err
		}
	}

	memories = store.Create(memories, c.Content, date)
	if err := store.Save(memories); err != nil {
		return err
	}

	created := memories[len(memories)-1]
	fmt.Printf("Added memory %s for %s\n", created.Key, calendar.FormatDay(created.Date))
	return nil
}
