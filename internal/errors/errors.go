// Package errors is the CLI's exit boundary: every command error funnels
// through here so the user-facing prefix and the logged record stay in one
// place.
package errors

import (
	"fmt"
	"os"

	"github.com/daybook-dev/daybook/internal/logger"
)

// Format renders an error for the terminal with the standard "Error: "
// prefix. A nil error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it to stderr, and exits with code 1. A nil
// error is a no-op, so command results can be passed straight through.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(1)
}
