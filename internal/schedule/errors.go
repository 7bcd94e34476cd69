package schedule

import "github.com/ayoisaiah/classfocus/internal/apperr"

var (
	// ErrMalformedSession is returned for entries whose bounds cannot be
	// parsed or do not describe a same-day window.
	ErrMalformedSession = &apperr.Error{
		Message: "malformed class session %q",
	}

	errInvalidClock = &apperr.Error{
		Message: "invalid time %q: expected HH:MM in 24-hour format",
	}

	errEmptySubject = &apperr.Error{
		Message: "subject cannot be empty",
	}
)
