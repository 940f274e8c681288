package timer

import "github.com/ayoisaiah/focusexpress/internal/apperr"

var errParseCmd = &apperr.Error{
	Message: "unable to parse arrival_cmd option",
}
