package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/api/metrics"
	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

// AccessTokenCookie is the cookie carrying the session token.
const AccessTokenCookie = "access_token"

// identityKey is the echo context key the decoded identity is stored under.
const identityKey = "auth_identity"

// Auth requires a valid session token in the access-token cookie and injects
// the decoded identity into the request context. Downstream handlers read it
// back with IdentityFromContext and never re-verify the token.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := extractIdentity(c, tokens)
			if err != nil {
				return err
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// AuthAdmin requires a valid session token whose role clears the admin gate.
// An authenticated caller with an insufficient role gets Forbidden, distinct
// from the Unauthenticated outcome of a missing or invalid token.
func AuthAdmin(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := extractIdentity(c, tokens)
			if err != nil {
				return err
			}
			if !identity.Role.IsAdmin() {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// AuthOptional decodes the access-token cookie when present and valid, and
// continues anonymously otherwise. Used on open routes whose behavior is
// enriched by an identity, such as registration honoring an admin's role
// field.
func AuthOptional(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			if identity, err := tokens.Verify(cookie.Value); err == nil {
				c.Set(identityKey, identity)
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity injected by Auth or AuthAdmin.
func IdentityFromContext(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

func extractIdentity(c echo.Context, tokens ports.TokenService) (domain.Identity, error) {
	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
		return domain.Identity{}, domain.ErrTokenMissing
	}

	identity, err := tokens.Verify(cookie.Value)
	if err != nil {
		reason := "invalid_token"
		if err == domain.ErrTokenExpired {
			reason = "expired_token"
		}
		metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
		return domain.Identity{}, err
	}
	return identity, nil
}
