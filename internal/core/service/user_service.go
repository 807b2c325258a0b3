package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

// UserService implements account lifecycle operations: creation, listing,
// role changes, deletion, and favorites updates.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers an account with a hashed password. The role in the input
// is only honored when the caller is an admin; anonymous registration always
// yields a regular user.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput, caller *domain.Identity) (*domain.User, error) {
	role := domain.RoleUser
	if input.Role != "" && caller != nil && caller.Role.IsAdmin() {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ChangeRole updates the target's role. The raw role is validated before
// anything touches the store, and an identity can never change its own role,
// whatever the requested value.
func (s *UserService) ChangeRole(ctx context.Context, targetID, role string, caller domain.Identity) (*domain.User, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	if targetID == caller.UserID {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.UpdateRole(ctx, targetID, parsed); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Str("role", role).Str("changed_by", caller.UserID).Msg("role changed")
	return s.repo.FindByID(ctx, targetID)
}

// Delete removes the target account. An identity can never delete its own
// account through this administrative path.
func (s *UserService) Delete(ctx context.Context, targetID string, caller domain.Identity) error {
	if targetID == caller.UserID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", targetID).Str("deleted_by", caller.UserID).Msg("user deleted")
	return nil
}

func (s *UserService) UpdateFavorites(ctx context.Context, userID string, favorites []string) error {
	if favorites == nil {
		favorites = []string{}
	}
	return s.repo.UpdateFavorites(ctx, userID, favorites)
}
