package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Info:        input.Info,
		Price:       input.Price,
		CategoryURL: input.CategoryURL,
		ImgURL:      input.ImgURL,
		UserID:      input.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("user_id", created.UserID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of products. Options are normalized here so every
// repository implementation sees sane values.
func (s *ProductService) List(ctx context.Context, opts ports.ProductListOptions) ([]domain.Product, error) {
	if opts.PerPage <= 0 || opts.PerPage > maxPerPage {
		opts.PerPage = defaultPerPage
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Sort == "" {
		opts.Sort = "_id"
	}
	return s.repo.Find(ctx, opts)
}

func (s *ProductService) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.CreateProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Info = input.Info
	existing.Price = input.Price
	existing.CategoryURL = input.CategoryURL
	existing.ImgURL = input.ImgURL
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
