package journey

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var (
	errNoLabel = &apperr.Error{
		Message: "please select a mission label (e.g. Study, Work)",
	}

	errNoSubLabel = &apperr.Error{
		Message: "please select a subject for %s",
	}

	errNoPromptValue = &apperr.Error{
		Message: "please enter the %s",
	}

	errInvalidDuration = &apperr.Error{
		Message: "please set a duration greater than 0",
	}

	errNoDestination = &apperr.Error{
		Message: "please select a destination",
	}

	errInvalidSeat = &apperr.Error{
		Message: "seat %s does not exist: choose a row from 1-3 and a column from A-D",
	}

	errInvalidTransition = &apperr.Error{
		Message: "cannot %s while the journey is %s",
	}
)
