package schedules

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/schedule"
	"github.com/daybook-dev/daybook/internal/validation"
)

type ScheduleSetCmd struct {
	Weekday  int    `arg:"" help:"Weekday (0-6, 0 = Monday)."`
	Period   int    `arg:"" help:"Period of the day (0-5)."`
	Title    string `arg:"" help:"Class or activity title."`
	Location string `short:"l" help:"Where it happens."`
}

func (c *ScheduleSetCmd) entry() models.Schedule {
	return models.Schedule{
		Title:    c.Title,
		Location: c.Location,
		Time:     models.SlotRef{c.Weekday, c.Period},
	}
}

func (c *ScheduleSetCmd) Validate() error {
	return validation.ValidateSchedule(c.entry())
}

func (c *ScheduleSetCmd) Run(ctx *cli.Context) error {
	schedules, err := schedule.Load(ctx.Store)
	if err != nil {
		return err
	}

	schedules = schedule.Upsert(schedules, c.entry())
	if err := schedule.Save(ctx.Store, schedules); err != nil {
		return err
	}

	fmt.Printf("Set %s at slot (%d, %d)\n", c.Title, c.Weekday, c.Period)
	return nil
}
