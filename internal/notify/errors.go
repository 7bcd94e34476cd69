package notify

import "github.com/ayoisaiah/classfocus/internal/apperr"

var (
	// ErrInvalidSoundFormat is returned for sound files with an unsupported
	// extension.
	ErrInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errNotificationFailed = &apperr.Error{
		Message: "unable to display notification",
	}

	errSoundFailed = &apperr.Error{
		Message: "unable to play sound %q",
	}
)
