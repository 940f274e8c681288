package store

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var (
	errFocusRunning = &apperr.Error{
		Message: "is FocusExpress already running? Only one instance can be active at a time",
	}

	errCorruptSession = &apperr.Error{
		Message: "unable to decode stored session #%d",
	}
)
