package system

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized daybook storage at %s\n", ctx.Store.Path())
	return nil
}
