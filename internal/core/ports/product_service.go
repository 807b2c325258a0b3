package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// CreateProductInput carries the fields accepted when creating or replacing
// a product.
type CreateProductInput struct {
	Name        string
	Info        string
	Price       float64
	CategoryURL string
	ImgURL      string
	UserID      string
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, opts ProductListOptions) ([]domain.Product, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
	Update(ctx context.Context, id string, input CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
