// Package cmd provides shared functionality for command line entry points:
// error and warning reporting and Cobra entry point adaptation.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
)

// Warning prints a warning message to standard error, highlighted when
// standard error is a terminal.
func Warning(message string) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color.New(color.FgYellow).Fprintln(os.Stderr, "Warning:", message)
	} else {
		fmt.Fprintln(os.Stderr, "Warning:", message)
	}
}

// Error prints an error message to standard error, highlighted when standard
// error is a terminal.
func Error(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
