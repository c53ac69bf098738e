// Package adapters provides the gorm repository for the cafes feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cafe_backend/internal/feature/cafes/domain/entity"
	"cafe_backend/internal/feature/cafes/usecase"
)

// cafeGorm is the gorm implementation of the CafeRepository interface.
type cafeGorm struct {
	db *gorm.DB
}

var _ usecase.CafeRepository = (*cafeGorm)(nil)

// NewCafeGorm creates a new instance of cafeGorm with the given DB connection.
func NewCafeGorm(db *gorm.DB) *cafeGorm {
	return &cafeGorm{db: db}
}

// List returns every café in primary-key order.
func (r *cafeGorm) List(ctx context.Context) ([]entity.Cafe, error) {
	var cafes []entity.Cafe
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// FindByID retrieves one café by id.
// Returns usecase.ErrCafeNotFound if no record exists.
func (r *cafeGorm) FindByID(ctx context.Context, id uint) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// FindByMapURL retrieves the café registered under the given map URL.
// Returns usecase.ErrCafeNotFound if no record exists.
func (r *cafeGorm) FindByMapURL(ctx context.Context, mapURL string) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.db.WithContext(ctx).Where("map_url = ?", mapURL).First(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// Create inserts a new café in a single statement.
// The unique index on map_url backs up the usecase's pre-insert check;
// a violation maps to usecase.ErrMapURLTaken.
func (r *cafeGorm) Create(ctx context.Context, cafe *entity.Cafe) error {
	if err := r.db.WithContext(ctx).Create(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrMapURLTaken
		}
		return err
	}
	return nil
}

// Save overwrites the full record in a single UPDATE. Save writes every
// field including zero-valued booleans, which is exactly the
// full-replace contract the edit flow needs.
func (r *cafeGorm) Save(ctx context.Context, cafe *entity.Cafe) error {
	if err := r.db.WithContext(ctx).Save(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrMapURLTaken
		}
		return err
	}
	return nil
}

// Delete removes one café by id.
// Returns usecase.ErrCafeNotFound when nothing was deleted.
func (r *cafeGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Cafe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCafeNotFound
	}
	return nil
}
