package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/daybook-dev/daybook/internal/calendar"
	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/cli/backups"
	"github.com/daybook-dev/daybook/internal/cli/memories"
	"github.com/daybook-dev/daybook/internal/cli/schedules"
	"github.com/daybook-dev/daybook/internal/cli/system"
	"github.com/daybook-dev/daybook/internal/cli/tasks"
	"github.com/daybook-dev/daybook/internal/constants"
	"github.com/daybook-dev/daybook/internal/errors"
	"github.com/daybook-dev/daybook/internal/logger"
	"github.com/daybook-dev/daybook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db or .sqlite extension selects the SQLite backend." type:"path" default:"~/.config/daybook/daybook.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize daybook storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Task   struct {
		Add  tasks.TaskAddCmd  `cmd:"" help:"Add a task to a day."`
		List tasks.TaskListCmd `cmd:"" help:"List a day's tasks." default:"1"`
		Done tasks.TaskDoneCmd `cmd:"" help:"Toggle a task finished/unfinished."`
		Edit tasks.TaskEditCmd `cmd:"" help:"Edit a task. An empty --title deletes it."`
	} `cmd:"" help:"Manage daily tasks."`
	Memory struct {
		Add  memories.MemoryAddCmd  `cmd:"" help:"Add a memory note."`
		List memories.MemoryListCmd `cmd:"" help:"List memories, most recent day first." default:"1"`
		Edit memories.MemoryEditCmd `cmd:"" help:"Edit a memory. Empty content deletes it."`
	} `cmd:"" help:"Manage daily memory notes."`
	Schedule struct {
		Set   schedules.ScheduleSetCmd   `cmd:"" help:"Set the entry at a (weekday, period) slot."`
		Unset schedules.ScheduleUnsetCmd `cmd:"" help:"Clear a (weekday, period) slot."`
		Show  schedules.ScheduleShowCmd  `cmd:"" help:"Show the weekly schedule." default:"1"`
	} `cmd:"" help:"Manage the weekly schedule."`
	Backup struct {
		Export backups.BackupExportCmd `cmd:"" help:"Dump the whole store as one JSON object."`
		Import backups.BackupImportCmd `cmd:"" help:"Restore a previously exported dump."`
	} `cmd:"" help:"Backup and restore the whole store."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal day planner: daily tasks, memory notes, and a weekly schedule."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := storage.Open(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: store,
		Clock: calendar.Now,
	}

	// Load the store before running the command (init creates it instead)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	errors.Fatal(ctx.Run(appCtx))
}
