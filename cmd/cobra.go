package cmd

import (
	"github.com/spf13/cobra"
)

// Mainify adapts a Cobra entry point that returns an error into a standard
// Cobra entry point. It allows entry points to rely on defer-based cleanup,
// which doesn't occur if the entry point terminates the process directly.
// Errors are printed and converted to an error exit code once the entry point
// has fully unwound.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}
