package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	err := fmt.Errorf("storage not initialized")
	if got := Format(err); got != "Error: storage not initialized" {
		t.Errorf("Format(err) = %q", got)
	}

	wrapped := fmt.Errorf("failed to load tasks: %w", err)
	if got := Format(wrapped); got != "Error: failed to load tasks: storage not initialized" {
		t.Errorf("Format(wrapped) = %q", got)
	}
}
