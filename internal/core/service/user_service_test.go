package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

func TestUserService_Create_DefaultsRoleToUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "pass123",
	}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_AnonymousCannotPickRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "pass123",
		Role:     "superadmin",
	}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("anonymous registration must yield role user, got %s", user.Role)
	}
}

func TestUserService_Create_AdminPicksRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	caller := &domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "pass123",
		Role:     "admin",
	}, caller)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", user.Role)
	}
}

func TestUserService_Create_AdminInvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	caller := &domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "pass123",
		Role:     "overlord",
	}, caller)
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	input := ports.CreateUserInput{Name: "Bob", Email: "bob@example.com", Password: "pass123"}
	if _, err := svc.Create(context.Background(), input, nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input, nil); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_ChangeRole_SelfForbidden(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", "pass", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())
	caller := domain.Identity{UserID: admin.ID, Role: domain.RoleAdmin}

	// Every role value, including the caller's current role, is forbidden.
	for _, role := range []string{"user", "admin", "superadmin"} {
		if _, err := svc.ChangeRole(context.Background(), admin.ID, role, caller); err != domain.ErrForbidden {
			t.Fatalf("role %q: expected ErrForbidden, got %v", role, err)
		}
	}
	if repo.roleWrites != 0 {
		t.Fatalf("expected no role writes, got %d", repo.roleWrites)
	}
}

func TestUserService_ChangeRole_InvalidRoleBeforeWrite(t *testing.T) {
	repo := newStubUserRepo()
	target := seedUser(t, repo, "bob@example.com", "pass", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())
	caller := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	if _, err := svc.ChangeRole(context.Background(), target.ID, "overlord", caller); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if repo.roleWrites != 0 {
		t.Fatalf("invalid role must be rejected before any persistence write, got %d writes", repo.roleWrites)
	}
}

func TestUserService_ChangeRole_Success(t *testing.T) {
	repo := newStubUserRepo()
	target := seedUser(t, repo, "bob@example.com", "pass", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())
	caller := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	updated, err := svc.ChangeRole(context.Background(), target.ID, "admin", caller)
	if err != nil {
		t.Fatalf("ChangeRole returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", updated.Role)
	}
}

func TestUserService_ChangeRole_TargetNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	caller := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	if _, err := svc.ChangeRole(context.Background(), "missing", "admin", caller); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_SelfForbidden(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", "pass", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())
	caller := domain.Identity{UserID: admin.ID, Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin.ID, caller); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.deleteWrites != 0 {
		t.Fatalf("expected no delete writes, got %d", repo.deleteWrites)
	}
}

func TestUserService_Delete_Success(t *testing.T) {
	repo := newStubUserRepo()
	target := seedUser(t, repo, "bob@example.com", "pass", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())
	caller := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), target.ID, caller); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), target.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected user to be gone, got %v", err)
	}
}

func TestUserService_UpdateFavorites(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "bob@example.com", "pass", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.UpdateFavorites(context.Background(), user.ID, []string{"latte", "mocha"}); err != nil {
		t.Fatalf("UpdateFavorites returned error: %v", err)
	}
	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if len(stored.Favorites) != 2 || stored.Favorites[0] != "latte" {
		t.Fatalf("unexpected favorites: %v", stored.Favorites)
	}
}
