package schedules

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/constants"
	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/schedule"
)

var weekdayNames = [constants.WeekdaysPerWeek]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

type ScheduleShowCmd struct{}

func (c *ScheduleShowCmd) Run(ctx *cli.Context) error {
	schedules, err := schedule.Load(ctx.Store)
	if err != nil {
		return err
	}

	for weekday := 0; weekday < constants.WeekdaysPerWeek; weekday++ {
		fmt.Println(cli.HeaderStyle.Render(weekdayNames[weekday]))
		for period := 0; period < constants.PeriodsPerDay; period++ {
			entry, ok := schedule.At(schedules, models.SlotRef{weekday, period})
			if !ok {
				fmt.Printf("  %d: %s\n", period, cli.DimStyle.Render("-"))
				continue
			}
			line := entry.Title
			if entry.Location != "" {
				line += fmt.Sprintf(" @ %s", entry.Location)
			}
			fmt.Printf("  %d: %s\n", period, cli.PendingStyle.Render(line))
		}
	}
	return nil
}
