package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

type stubDrinkRepo struct {
	drinks map[string]*domain.Drink
}

func newStubDrinkRepo() *stubDrinkRepo {
	return &stubDrinkRepo{drinks: make(map[string]*domain.Drink)}
}

func (r *stubDrinkRepo) Create(_ context.Context, d *domain.Drink) (*domain.Drink, error) {
	stored := *d
	stored.ID = fmt.Sprintf("d-%d", len(r.drinks)+1)
	r.drinks[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubDrinkRepo) FindByID(_ context.Context, id string) (*domain.Drink, error) {
	if d, ok := r.drinks[id]; ok {
		out := *d
		return &out, nil
	}
	return nil, domain.ErrDrinkNotFound
}

func (r *stubDrinkRepo) FindAll(_ context.Context) ([]domain.Drink, error) {
	out := make([]domain.Drink, 0, len(r.drinks))
	for _, d := range r.drinks {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDrinkRepo) Update(_ context.Context, d *domain.Drink) (*domain.Drink, error) {
	if _, ok := r.drinks[d.ID]; !ok {
		return nil, domain.ErrDrinkNotFound
	}
	stored := *d
	r.drinks[d.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubDrinkRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.drinks[id]; !ok {
		return domain.ErrDrinkNotFound
	}
	delete(r.drinks, id)
	return nil
}

func TestDrinkService_PartialUpdate(t *testing.T) {
	repo := newStubDrinkRepo()
	svc := NewDrinkService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "Cola", "330", 2.5)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newPrice := 3.0
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateDrinkInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 3.0 {
		t.Fatalf("expected price 3.0, got %v", updated.Price)
	}
	if updated.Name != "Cola" || updated.ML != "330" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestDrinkService_GetDelete_NotFound(t *testing.T) {
	svc := NewDrinkService(newStubDrinkRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrDrinkNotFound {
		t.Fatalf("expected ErrDrinkNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrDrinkNotFound {
		t.Fatalf("expected ErrDrinkNotFound, got %v", err)
	}
}
