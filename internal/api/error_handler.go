package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/api/handler"
	"github.com/mathquest/platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope with timestamp, status, label,
//     message and request path.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, label, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{
			Timestamp: time.Now().UTC(),
			Status:    code,
			Error:     label,
			Message:   msg,
			Path:      c.Request().URL.Path,
		})
	}
}

// resolveError maps an error to (status, label, message). Most specific
// categories are checked first; the order is load-bearing.
func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Request-body validation failures aggregate every failing field.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation Error", ve.Error()
	}

	// Parameter type mismatches name the parameter, expected type and value.
	var tme *handler.TypeMismatchError
	if errors.As(err, &tme) {
		return http.StatusBadRequest, "Type Mismatch Error", tme.Error()
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized", err.Error()

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden", err.Error()

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrClassroomNotFound),
		errors.Is(err, domain.ErrJoinCodeNotFound),
		errors.Is(err, domain.ErrLessonNotFound),
		errors.Is(err, domain.ErrBlockNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrSubmissionNotFound),
		errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrFeedbackNotFound):
		return http.StatusNotFound, "Not Found", err.Error()

	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAlreadyEnrolled):
		return http.StatusConflict, "Conflict", err.Error()

	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrInvalidBlockKind),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrScoreOutOfRange),
		errors.Is(err, domain.ErrRatingOutOfRange),
		errors.Is(err, domain.ErrActivityPastDue):
		return http.StatusBadRequest, "Bad Request", err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error", "internal server error"
}
