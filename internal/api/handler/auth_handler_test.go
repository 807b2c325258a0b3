package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/api/middleware"
	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

type stubAuthService struct {
	result *ports.LoginResult
	err    error

	gotEmail    string
	gotPassword string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	s.gotEmail, s.gotPassword = email, password
	return s.result, s.err
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.AccessTokenCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	svc := &stubAuthService{result: &ports.LoginResult{
		Token:     "signed-token",
		ExpiresAt: expiresAt,
		User:      &domain.User{ID: "u1", Role: domain.RoleUser},
	}}
	h := NewAuthHandler(svc, false)

	c, rec := newJSONContext(t, http.MethodPost, "/users/login", `{"email":"a@b.com","password":"correct"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotEmail != "a@b.com" || svc.gotPassword != "correct" {
		t.Fatalf("unexpected credentials forwarded: %q %q", svc.gotEmail, svc.gotPassword)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatal("expected access token cookie to be set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("cookie must be httpOnly")
	}
	if cookie.MaxAge < 3595 || cookie.MaxAge > 3600 {
		t.Fatalf("cookie max-age must match the token lifetime, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, false)

	c, rec := newJSONContext(t, http.MethodPost, "/users/login", `{"email":"a@b.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if cookie := sessionCookieFrom(rec); cookie != nil {
		t.Fatalf("no cookie must be set on failed login, got %+v", cookie)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	c, _ := newJSONContext(t, http.MethodPost, "/users/login", `{"email":"not-an-email","password":"x"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	c, rec := newJSONContext(t, http.MethodPost, "/users/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatal("expected expiring cookie")
	}
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("expected erased cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}
