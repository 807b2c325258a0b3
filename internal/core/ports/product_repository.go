package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// ProductListOptions control pagination and ordering of product listings.
type ProductListOptions struct {
	Page    int
	PerPage int
	Sort    string
	Reverse bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Find(ctx context.Context, opts ProductListOptions) ([]domain.Product, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
