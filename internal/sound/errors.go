package sound

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s",
	}

	errFetchSound = &apperr.Error{
		Message: "unable to fetch %s: server responded with %s",
	}
)
