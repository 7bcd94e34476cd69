package app

import "github.com/ayoisaiah/classfocus/internal/apperr"

var (
	errTrackingDisabled = &apperr.Error{
		Message: "tracking is disabled: set tracking.enabled to true with 'classfocus edit-config'",
	}

	errMissingRef = &apperr.Error{
		Message: "specify the id or list position of a class session",
	}

	errMissingValue = &apperr.Error{
		Message: "missing --%s (run in a terminal to be prompted for it)",
	}

	errSessionCmd = &apperr.Error{
		Message: "session command %q failed",
	}
)
