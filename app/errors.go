package app

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var (
	errInvalidPeriod = &apperr.Error{
		Message: "invalid period %q: must be one of %s",
	}

	errParsingDate = &apperr.Error{
		Message: "unable to understand the date %q",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errUnknownDestination = &apperr.Error{
		Message: "unknown destination %q: run 'focusexpress destinations' to see where you can travel",
	}

	errUnknownLabel = &apperr.Error{
		Message: "no custom label with id %q",
	}

	errPresetLabel = &apperr.Error{
		Message: "%q is a preset label and cannot be removed",
	}

	errSaveLabels = &apperr.Error{
		Message: "unable to save labels",
	}
)
