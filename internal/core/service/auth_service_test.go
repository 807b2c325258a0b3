package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafehub/menu-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id

	roleWrites   int
	deleteWrites int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	stored := cloneUser(user)
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("id-%d", len(r.users)+1)
	}
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	r.roleWrites++
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) UpdateFavorites(_ context.Context, id string, favorites []string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favorites = favorites
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.deleteWrites++
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubThrottle struct {
	locked   bool
	err      error
	failures int
	resets   int
}

func (t *stubThrottle) IsLocked(context.Context, string) (bool, error) { return t.locked, t.err }
func (t *stubThrottle) RecordFailure(context.Context, string) error    { t.failures++; return nil }
func (t *stubThrottle) Reset(context.Context, string) error            { t.resets++; return nil }

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "a@b.com", "correct", domain.RoleAdmin)

	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(repo, tokens, nil, zerolog.Nop())

	result, err := svc.Login(context.Background(), "a@b.com", "correct")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	identity, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if identity.UserID != seeded.ID {
		t.Fatalf("token id %q does not match account id %q", identity.UserID, seeded.ID)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("token role %q does not match stored role", identity.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "correct", domain.RoleUser)

	svc := NewAuthService(repo, NewTokenService("secret", time.Hour), nil, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@b.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "correct", domain.RoleUser)

	svc := NewAuthService(repo, NewTokenService("secret", time.Hour), nil, zerolog.Nop())

	_, missErr := svc.Login(context.Background(), "ghost@b.com", "whatever")
	_, mismatchErr := svc.Login(context.Background(), "a@b.com", "wrong")

	if missErr != domain.ErrInvalidCredentials || mismatchErr != domain.ErrInvalidCredentials {
		t.Fatalf("miss and mismatch must be the same error, got %v and %v", missErr, mismatchErr)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "correct", domain.RoleUser)

	throttle := &stubThrottle{locked: true}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour), throttle, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@b.com", "correct"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ThrottleFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "correct", domain.RoleUser)

	throttle := &stubThrottle{err: errors.New("redis down")}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour), throttle, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@b.com", "correct"); err != nil {
		t.Fatalf("expected throttle errors to be ignored, got %v", err)
	}
}

func TestAuthService_Login_FailureRecordedAndReset(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "correct", domain.RoleUser)

	throttle := &stubThrottle{}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour), throttle, zerolog.Nop())

	_, _ = svc.Login(context.Background(), "a@b.com", "wrong")
	if throttle.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", throttle.failures)
	}

	if _, err := svc.Login(context.Background(), "a@b.com", "correct"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset on success, got %d", throttle.resets)
	}
}
