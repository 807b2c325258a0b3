package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/api/middleware"
	"github.com/cafehub/menu-api/internal/core/domain"
)

// callerIdentity extracts the identity injected by the auth gates and
// fast-fails before any service call when it is absent; a gated route
// without an identity means the middleware chain is miswired.
func callerIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, domain.ErrTokenMissing
	}
	return identity, nil
}
