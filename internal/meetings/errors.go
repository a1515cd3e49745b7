package meetings

import "errors"

var (
	ErrMalformedEvent = errors.New("malformed event")
	ErrEmptyRoster    = errors.New("roster is empty")
	ErrInvalidWindow  = errors.New("invalid window")
	ErrInvalidRules   = errors.New("invalid rules")
)
