package config

import "github.com/ayoisaiah/focusexpress/internal/apperr"

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

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid freestyle duration: %s",
	}

	errFreestyleTooShort = &apperr.Error{
		Message: "please set a duration greater than 0 (freestyle journeys are counted in whole minutes, got %v)",
	}

	errUnknownDestination = &apperr.Error{
		Message: "unknown default destination: %s",
	}

	errOutOfRange = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errNonPositive = &apperr.Error{
		Message: "%s must be greater than zero",
	}

	errNegative = &apperr.Error{
		Message: "%s cannot be negative",
	}

	errEmptyModel = &apperr.Error{
		Message: "flavor model cannot be empty",
	}

	errEmptyTrack = &apperr.Error{
		Message: "playlist track %d has no source",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level: %s (must be debug, info, warn, or error)",
	}
)
