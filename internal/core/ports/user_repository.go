package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Every call is atomic per document; the core relies on that for the
// correctness of concurrent role changes and deletions.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdateFavorites(ctx context.Context, id string, favorites []string) error
	Delete(ctx context.Context, id string) error
}
