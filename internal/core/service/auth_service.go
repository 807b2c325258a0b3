package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

// dummyHash is compared against when the email has no matching account, so
// a lookup miss costs the same as a password mismatch. Credentials failures
// must be indistinguishable to the caller, in timing as well as in the
// response body.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements login against the user store.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService builds an AuthService. throttle may be nil, in which case
// no login rate limiting is applied.
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, logger: logger}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password both return domain.ErrInvalidCredentials.
//
// There is no server-side revocation: a token issued here stays valid until
// its expiry even if the account's role changes or the account is deleted.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if locked := s.isLocked(ctx, email); locked {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// isLocked consults the throttle, failing open when it is unavailable.
func (s *AuthService) isLocked(ctx context.Context, email string) bool {
	if s.throttle == nil {
		return false
	}
	locked, err := s.throttle.IsLocked(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle check failed")
		return false
	}
	return locked
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
