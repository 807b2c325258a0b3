package ports

import (
	"context"
	"time"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// TokenService issues and verifies signed session tokens. The signing key
// is fixed for the process lifetime; the same service instance must be used
// for issuance and verification.
type TokenService interface {
	Issue(identity domain.Identity) (token string, expiresAt time.Time, err error)
	Verify(token string) (domain.Identity, error)
}

// LoginResult is what a successful login hands back to the transport layer,
// which places the token in the response cookie.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginThrottle limits repeated failed logins per email. Implementations
// are best-effort: callers treat errors as "not throttled".
type LoginThrottle interface {
	IsLocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
