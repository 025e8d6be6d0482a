package memories

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/memory"
)

type MemoryListCmd struct{}

func (c *MemoryListCmd) Run(ctx *cli.Context) error {
	store := memory.NewStore(ctx.Store)
	memories, err := store.Load()
	if err != nil {
		return err
	}

	if len(memories) == 0 {
		fmt.Println(cli.DimStyle.Render("(no memories)"))
		return nil
	}

	// Most recent day first, grouped under a day heading.
	var lastIndex int
	first := true
	for _, m := range memory.SortForDisplay(memories) {
		index := calendar.DayIndex(m.Date)
		if first || index != lastIndex {
			fmt.Println(cli.HeaderStyle.Render(calendar.FormatDay(m.Date)))
			lastIndex = index
			first = false
		}
		fmt.Printf("  %s  %s\n", m.Content, cli.KeyStyle.Render(m.Key))
	}
	return nil
}
