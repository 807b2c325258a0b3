package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cafehub/menu-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing token", domain.ErrTokenMissing, http.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"malformed token", domain.ErrTokenMalformed, http.StatusUnauthorized},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"product missing", domain.ErrProductNotFound, http.StatusNotFound},
		{"echo error passthrough", echo.NewHTTPError(http.StatusBadRequest, "bad input"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runErrorHandler(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("expected an error message in the envelope")
			}
		})
	}
}

func TestHTTPErrorHandler_HidesInternalErrors(t *testing.T) {
	rec := runErrorHandler(t, errInternal{})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}

type errInternal struct{}

func (errInternal) Error() string { return "mongo: socket was unexpectedly closed" }
