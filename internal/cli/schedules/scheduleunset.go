package schedules

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/models"
	"github.com/daybook-dev/daybook/internal/schedule"
	"github.com/daybook-dev/daybook/internal/validation"
)

type ScheduleUnsetCmd struct {
	Weekday int `arg:"" help:"Weekday (0-6, 0 = Monday)."`
	Period  int `arg:"" help:"Period of the day (0-5)."`
}

func (c *ScheduleUnsetCmd) Validate() error {
	return validation.ValidateSlot(models.SlotRef{c.Weekday, c.Period})
}

func (c *ScheduleUnsetCmd) Run(ctx *cli.Context) error {
	schedules, err := schedule.Load(ctx.Store)
	if err != nil {
		return err
	}

	slot := models.SlotRef{c.Weekday, c.Period}
	schedules = schedule.Delete(schedules, models.Schedule{Time: slot})
	if err := schedule.Save(ctx.Store, schedules); err != nil {
		return err
	}

	fmt.Printf("Cleared slot (%d, %d)\n", c.Weekday, c.Period)
	return nil
}
