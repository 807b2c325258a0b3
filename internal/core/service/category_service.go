package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name, urlName, info, imgURL string) (*domain.Category, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Category{
		Name:      name,
		URLName:   urlName,
		Info:      info,
		ImgURL:    imgURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category_id", created.ID).Str("url_name", urlName).Msg("category created")
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.UpdateCategoryInput) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.URLName != nil {
		existing.URLName = *input.URLName
	}
	if input.Info != nil {
		existing.Info = *input.Info
	}
	if input.ImgURL != nil {
		existing.ImgURL = *input.ImgURL
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
