// Package osutil holds platform constants shared across classfocus
package osutil

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// DirPermission is used for the data and log directories.
const DirPermission = 0o750
