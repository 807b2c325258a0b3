package ports

import (
	"context"

	"github.com/cafehub/menu-api/internal/core/domain"
)

// UpdateCategoryInput carries a partial category update; nil fields are
// left untouched.
type UpdateCategoryInput struct {
	Name    *string
	URLName *string
	Info    *string
	ImgURL  *string
}

type CategoryService interface {
	Create(ctx context.Context, name, urlName, info, imgURL string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
