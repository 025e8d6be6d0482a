package backups

import (
	"fmt"
	"os"

	"github.com/daybook-dev/daybook/internal/backup"
	"github.com/daybook-dev/daybook/internal/cli"
)

type BackupExportCmd struct {
	File string `arg:"" optional:"" help:"Write the backup to this file instead of stdout."`
}

func (c *BackupExportCmd) Run(ctx *cli.Context) error {
	data, err := backup.Export(ctx.Store)
	if err != nil {
		return err
	}

	if c.File == "" {
		fmt.Println(data)
		return nil
	}
	if err := os.WriteFile(c.File, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	fmt.Printf("Backup written to %s\n", c.File)
	return nil
}

// BackupImportCmd restores a backup. Keys are restored independently in
// encounter order: if a later entry fails, earlier ones stay written.
type BackupImportCmd struct {
	File string `arg:"" help:"Backup file produced by 'daybook backup export'."`
}

func (c *BackupImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if err := backup.Import(ctx.Store, string(data)); err != nil {
		return err
	}
	fmt.Println("Backup restored.")
	return nil
}
