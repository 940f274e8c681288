package history

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var (
	errLoadHistory = &apperr.Error{
		Message: "unable to load session history",
	}

	errSaveSession = &apperr.Error{
		Message: "unable to save session",
	}
)
