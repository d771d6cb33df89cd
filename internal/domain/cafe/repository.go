package cafe

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Random picks one row uniformly at random.
func (r *Repository) Random(ctx context.Context) (*Cafe, error) {
	var cafe Cafe
	err := r.db.WithContext(ctx).
		Order("RANDOM()").
		Take(&cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCafes
		}
		return nil, err
	}
	return &cafe, nil
}

func (r *Repository) List(ctx context.Context) ([]Cafe, error) {
	cafes := []Cafe{}
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&cafes).Error
	return cafes, err
}

// FindByLocation is a case-sensitive exact match on location.
func (r *Repository) FindByLocation(ctx context.Context, location string) ([]Cafe, error) {
	cafes := []Cafe{}
	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("id").
		Find(&cafes).Error
	return cafes, err
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Cafe, error) {
	var cafe Cafe
	if err := r.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

func (r *Repository) Create(ctx context.Context, cafe *Cafe) error {
	return r.db.WithContext(ctx).Create(cafe).Error
}

// CreateMissing inserts cafes whose name is not taken yet and reports how
// many rows were written.
func (r *Repository) CreateMissing(ctx context.Context, cafes []Cafe) (int64, error) {
	if len(cafes) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&cafes)
	return res.RowsAffected, res.Error
}

// UpdatePrice sets coffee_price in its own transaction. A nil price stores NULL.
func (r *Repository) UpdatePrice(ctx context.Context, id int64, price *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cafe Cafe
		if err := tx.Select("id").First(&cafe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCafeNotFound
			}
			return err
		}

		return tx.Model(&Cafe{}).
			Where("id = ?", id).
			Update("coffee_price", price).Error
	})
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cafe Cafe
		if err := tx.Select("id").First(&cafe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCafeNotFound
			}
			return err
		}

		return tx.Delete(&Cafe{}, id).Error
	})
}
