package store

import "github.com/ayoisaiah/classfocus/internal/apperr"

var (
	// ErrScheduleUnavailable reports that the timetable could not be read.
	// Trackers treat it as an empty schedule.
	ErrScheduleUnavailable = &apperr.Error{
		Message: "class schedule unavailable",
	}

	// ErrDatabaseLocked is returned when another process holds the database.
	ErrDatabaseLocked = &apperr.Error{
		Message: "the database is locked by another classfocus process",
	}

	// ErrSessionNotFound is returned when removing an unknown session.
	ErrSessionNotFound = &apperr.Error{
		Message: "no class session matches %q",
	}

	errBucketMissing = &apperr.Error{
		Message: "bucket %q is missing",
	}
)
