package domain

import "errors"

// Cross-cutting error taxonomy. Domain and route logic raise these (or the
// entity-specific sentinels next to each aggregate); the API error handler is
// the single place they become wire responses.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrUnauthorized    = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)
