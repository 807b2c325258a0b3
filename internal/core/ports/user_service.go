package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// CreateUserInput carries the registration payload. Role is a raw string:
// it is only honored when the caller holds an admin identity, and it is
// validated against the enumerated role set before any write.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput, caller *domain.Identity) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	ChangeRole(ctx context.Context, targetID, role string, caller domain.Identity) (*domain.User, error)
	Delete(ctx context.Context, targetID string, caller domain.Identity) error
	UpdateFavorites(ctx context.Context, userID string, favorites []string) error
}
