package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// UpdateDrinkInput carries a partial drink update; nil fields are left
// untouched.
type UpdateDrinkInput struct {
	Name  *string
	ML    *string
	Price *float64
}

type DrinkService interface {
	Create(ctx context.Context, name, ml string, price float64) (*domain.Drink, error)
	Get(ctx context.Context, id string) (*domain.Drink, error)
	List(ctx context.Context) ([]domain.Drink, error)
	Update(ctx context.Context, id string, input UpdateDrinkInput) (*domain.Drink, error)
	Delete(ctx context.Context, id string) error
}
