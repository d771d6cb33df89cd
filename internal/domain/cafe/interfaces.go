package cafe

import "context"

type Store interface {
	Random(ctx context.Context) (*Cafe, error)
	List(ctx context.Context) ([]Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]Cafe, error)
	Create(ctx context.Context, cafe *Cafe) error
	CreateMissing(ctx context.Context, cafes []Cafe) (int64, error)
	UpdatePrice(ctx context.Context, id int64, price *string) error
	Delete(ctx context.Context, id int64) error
}
