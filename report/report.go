// Package report prints the outcome of classfocus commands for the user
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/classfocus/internal/osutil"
)

// Success confirms a change to the timetable.
func Success(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

// Info prints a hint, e.g. when there is nothing to list.
func Info(msg string) {
	pterm.Info.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a failure status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
