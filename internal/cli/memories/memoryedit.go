package memories

import (
	"fmt"

	"github.com/daybook-dev/daybook/internal/cli"
	"github.com/daybook-dev/daybook/internal/memory"
	"github.com/daybook-dev/daybook/internal/models"
)

// MemoryEditCmd rewrites a note's content. Editing to empty content removes
// the entry; the store persists whatever list it is given, so the removal
// happens here.
type MemoryEditCmd struct {
	Key     string `arg:"" help:"Key of the memory to edit."`
	Content string `arg:"" optional:"" help:"New content. Empty content deletes the memory."`
}

func (c *MemoryEditCmd) Run(ctx *cli.Context) error {
	store := memory.NewStore(ctx.Store)
	memories, err := store.Load()
	if err != nil {
		return err
	}

	found := false
	updated := make([]models.Memory, 0, len(memories))
	for _, m := range memories {
		if m.Key != c.Key {
			updated = append(updated, m)
			continue
		}
		found = true
		if c.Content == "" {
			continue
		}
		m.Content = c.Content
		updated = append(updated, m)
	}
	if !found {
		return fmt.Errorf("no memory with key %s", c.Key)
	}

	if err := store.Save(updated); err != nil {
		return err
	}

	if c.Content == "" {
		fmt.Println("Deleted.")
	} else {
		fmt.Println("Updated.")
	}
	return nil
}
