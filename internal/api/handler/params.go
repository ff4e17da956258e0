package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// TypeMismatchError reports a strict parameter that could not be converted to
// its expected type. The API error handler renders it as a 400 "Type
// Mismatch Error".
type TypeMismatchError struct {
	Param    string
	Expected string
	Value    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter '%s' should be of type %s, but received value '%s' of type string",
		e.Param, e.Expected, e.Value)
}

// OptionalID binds a string form/query parameter to an optional numeric
// identifier. The frontend sends the literal strings "undefined" and "null"
// for unset selectors, so those — and blank input — resolve to absent rather
// than a parse error. A genuinely non-numeric string logs a warning and also
// resolves to absent.
func OptionalID(raw string, log zerolog.Logger) *uint {
	s := strings.TrimSpace(raw)
	switch s {
	case "", "undefined", "null":
		return nil
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		log.Warn().Str("value", raw).Msg("non-numeric identifier parameter treated as absent")
		return nil
	}

	id := uint(n)
	return &id
}

// PathID binds a strict numeric path parameter. Unlike OptionalID, a
// non-numeric value is a client error.
func PathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &TypeMismatchError{Param: name, Expected: "uint", Value: raw}
	}
	return uint(n), nil
}
