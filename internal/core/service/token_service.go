package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cafehub/menu-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the JWT payload: the identity claims plus the registered
// iat/exp pair. The `_id` key matches what clients already expect in the
// decoded token.
type tokenClaims struct {
	UserID string `json:"_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. The secret
// is process-wide configuration, set once at construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time // test hook
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the validity window applied to issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token binding the identity, valid from now until now+ttl.
func (s *TokenService) Issue(identity domain.Identity) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := &tokenClaims{
		UserID: identity.UserID,
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Failures map to domain.ErrTokenExpired or domain.ErrTokenMalformed; both
// are terminal. Role values are taken as-is: unknown roles are rejected at
// the write boundary, not at verify time.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenMalformed
	}
	if !parsed.Valid {
		return domain.Identity{}, domain.ErrTokenMalformed
	}

	return domain.Identity{UserID: claims.UserID, Role: domain.Role(claims.Role)}, nil
}
