package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/api/handler"
	"github.com/mathquest/platform/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/classrooms/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantCode  int
		wantLabel string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "Not Found"},
		{"classroom not found", domain.ErrClassroomNotFound, http.StatusNotFound, "Not Found"},
		{"join code not found", domain.ErrJoinCodeNotFound, http.StatusNotFound, "Not Found"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "Conflict"},
		{"duplicate enrollment", domain.ErrAlreadyEnrolled, http.StatusConflict, "Conflict"},
		{"score out of range", domain.ErrScoreOutOfRange, http.StatusBadRequest, "Bad Request"},
		{"past due", domain.ErrActivityPastDue, http.StatusBadRequest, "Bad Request"},
		{"invalid difficulty", domain.ErrInvalidDifficulty, http.StatusBadRequest, "Bad Request"},
		{"unexpected", errors.New("driver: bad connection"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("status = %d, want %d", code, tc.wantCode)
			}
			if body.Status != tc.wantCode {
				t.Errorf("body.Status = %d, want %d", body.Status, tc.wantCode)
			}
			if body.Error != tc.wantLabel {
				t.Errorf("body.Error = %q, want %q", body.Error, tc.wantLabel)
			}
		})
	}
}

func TestErrorHandler_EnvelopeFields(t *testing.T) {
	before := time.Now().UTC()
	_, body := renderError(t, domain.ErrLessonNotFound)

	if body.Path != "/classrooms/5" {
		t.Errorf("Path = %q, want /classrooms/5", body.Path)
	}
	if body.Message != domain.ErrLessonNotFound.Error() {
		t.Errorf("Message = %q, want %q", body.Message, domain.ErrLessonNotFound.Error())
	}
	if body.Timestamp.Before(before.Add(-time.Second)) || body.Timestamp.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("Timestamp %v outside expected window", body.Timestamp)
	}
}

func TestErrorHandler_ValidationErrorAggregates(t *testing.T) {
	ve := &handler.ValidationError{Fields: []handler.FieldError{
		{Field: "username", Message: "is required"},
		{Field: "email", Message: "must be a valid email"},
	}}

	code, body := renderError(t, ve)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	if body.Error != "Validation Error" {
		t.Errorf("Error = %q, want Validation Error", body.Error)
	}
	want := "username: is required; email: must be a valid email"
	if body.Message != want {
		t.Errorf("Message = %q, want %q", body.Message, want)
	}
}

func TestErrorHandler_TypeMismatch(t *testing.T) {
	tme := &handler.TypeMismatchError{Param: "id", Expected: "uint", Value: "abc"}

	code, body := renderError(t, tme)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	if body.Error != "Type Mismatch Error" {
		t.Errorf("Error = %q, want Type Mismatch Error", body.Error)
	}
	if body.Message != tme.Error() {
		t.Errorf("Message = %q, want %q", body.Message, tme.Error())
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	if body.Error != "Not Found" {
		t.Errorf("Error = %q, want Not Found", body.Error)
	}
}

func TestErrorHandler_GenericMessageFor500(t *testing.T) {
	_, body := renderError(t, errors.New("password hash leaked in detail"))
	if body.Message != "internal server error" {
		t.Errorf("internal details must not reach the client, got %q", body.Message)
	}
}
