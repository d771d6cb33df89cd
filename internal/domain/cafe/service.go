package cafe

import (
	"context"
	"fmt"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Random(ctx context.Context) (*Cafe, error) {
	return s.store.Random(ctx)
}

func (s *Service) All(ctx context.Context) ([]Cafe, error) {
	return s.store.List(ctx)
}

func (s *Service) SearchByLocation(ctx context.Context, location string) ([]Cafe, error) {
	return s.store.FindByLocation(ctx, location)
}

// Add stores the cafe as given. Duplicate names surface as the store's error.
func (s *Service) Add(ctx context.Context, req AddCafeRequest) (*Cafe, error) {
	cafe := req.toCafe()
	if err := s.store.Create(ctx, cafe); err != nil {
		return nil, fmt.Errorf("add cafe %q: %w", cafe.Name, err)
	}
	return cafe, nil
}

func (s *Service) UpdatePrice(ctx context.Context, id int64, newPrice *string) error {
	return s.store.UpdatePrice(ctx, id, newPrice)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// Seed inserts cafes whose names are not present yet.
func (s *Service) Seed(ctx context.Context, cafes []Cafe) (int64, error) {
	n, err := s.store.CreateMissing(ctx, cafes)
	if err != nil {
		return 0, fmt.Errorf("seed cafes: %w", err)
	}
	return n, nil
}
