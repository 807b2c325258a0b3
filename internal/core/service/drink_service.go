package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

type DrinkService struct {
	repo   ports.DrinkRepository
	logger zerolog.Logger
}

func NewDrinkService(repo ports.DrinkRepository, logger zerolog.Logger) *DrinkService {
	return &DrinkService{repo: repo, logger: logger}
}

func (s *DrinkService) Create(ctx context.Context, name, ml string, price float64) (*domain.Drink, error) {
	created, err := s.repo.Create(ctx, &domain.Drink{Name: name, ML: ml, Price: price})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("drink_id", created.ID).Msg("drink created")
	return created, nil
}

func (s *DrinkService) Get(ctx context.Context, id string) (*domain.Drink, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DrinkService) List(ctx context.Context) ([]domain.Drink, error) {
	return s.repo.FindAll(ctx)
}

func (s *DrinkService) Update(ctx context.Context, id string, input ports.UpdateDrinkInput) (*domain.Drink, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.ML != nil {
		existing.ML = *input.ML
	}
	if input.Price != nil {
		existing.Price = *input.Price
	}

	return s.repo.Update(ctx, existing)
}

func (s *DrinkService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
