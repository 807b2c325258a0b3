package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

type DrinkRepository interface {
	Create(ctx context.Context, drink *domain.Drink) (*domain.Drink, error)
	FindByID(ctx context.Context, id string) (*domain.Drink, error)
	FindAll(ctx context.Context) ([]domain.Drink, error)
	Update(ctx context.Context, drink *domain.Drink) (*domain.Drink, error)
	Delete(ctx context.Context, id string) error
}
