package config

import "github.com/ayoisaiah/classfocus/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %s",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSource = &apperr.Error{
		Message: "unknown tracking source %q (expected one of: %s)",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s cannot be empty",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s interval must be between %v and %v",
	}

	errNonPositiveDuration = &apperr.Error{
		Message: "%s duration must be positive",
	}

	errNegativeDuration = &apperr.Error{
		Message: "%s duration cannot be negative",
	}
)
