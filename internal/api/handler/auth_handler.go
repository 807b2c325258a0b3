package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/api/metrics"
	"github.com/cafehub/menu-api/internal/api/middleware"
	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

// AuthHandler handles login, logout, and token introspection. It owns the
// access-token cookie: the services hand back tokens, and this layer places
// them in (or erases them from) the transport carrier.
type AuthHandler struct {
	authService  ports.AuthService
	cookieSecure bool
}

// NewAuthHandler builds an AuthHandler. cookieSecure should be tied to the
// deployment's transport security.
func NewAuthHandler(authService ports.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

// Login authenticates a user and sets the access-token cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(h.sessionCookie(result.Token, result.ExpiresAt))

	return c.JSON(http.StatusOK, messageResponse{Msg: "login successful"})
}

// Logout erases the access-token cookie. Tokens are stateless, so this is a
// best-effort client-side invalidation; the token itself stays valid until
// its expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(http.StatusOK, messageResponse{Msg: "logout successful"})
}

// CheckToken echoes the identity decoded from the caller's token.
//
// @Summary      Inspect the current session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /users/check-token [get]
func (h *AuthHandler) CheckToken(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// sessionCookie builds the httpOnly access-token cookie with a max-age
// matching the token's remaining validity.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		Expires:  expiresAt,
	}
}
