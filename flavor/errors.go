package flavor

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var (
	errNoAPIKey = &apperr.Error{
		Message: "no API key configured for the flavor service: set flavor.api_key or GEMINI_API_KEY",
	}

	errEmptyResponse = &apperr.Error{
		Message: "flavor service returned no content",
	}

	errDecodeResponse = &apperr.Error{
		Message: "unable to decode flavor response",
	}

	errIncompleteResponse = &apperr.Error{
		Message: "flavor response is missing %s",
	}

	errDisabled = &apperr.Error{
		Message: "flavor service is disabled",
	}
)
