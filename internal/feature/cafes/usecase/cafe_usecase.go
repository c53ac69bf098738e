package usecase

import (
	"context"
	"errors"
	"fmt"

	"cafe_backend/internal/feature/cafes/domain/entity"
)

// CafeRepository abstracts the persistence layer for café records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CafeRepository interface {
	// List returns every café in primary-key order.
	List(ctx context.Context) ([]entity.Cafe, error)

	// FindByID retrieves one café. Returns ErrCafeNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.Cafe, error)

	// FindByMapURL retrieves the café registered under the given map URL.
	// Returns ErrCafeNotFound if absent.
	FindByMapURL(ctx context.Context, mapURL string) (*entity.Cafe, error)

	// Create persists a new café. Returns ErrMapURLTaken when the map
	// URL collides with an existing record.
	Create(ctx context.Context, cafe *entity.Cafe) error

	// Save overwrites every mutable field of an existing café.
	Save(ctx context.Context, cafe *entity.Cafe) error

	// Delete removes a café by id. Returns ErrCafeNotFound if absent.
	Delete(ctx context.Context, id uint) error
}

// CafeUsecase provides the list/get/create/update/delete flows for cafés.
type CafeUsecase struct {
	repo CafeRepository
}

// NewCafeUsecase creates a new CafeUsecase with the given repository.
func NewCafeUsecase(r CafeRepository) *CafeUsecase {
	return &CafeUsecase{repo: r}
}

// List returns every café. Order is stable within a read (primary key).
func (u *CafeUsecase) List(ctx context.Context) ([]entity.Cafe, error) {
	return u.repo.List(ctx)
}

// Get returns one café by id.
func (u *CafeUsecase) Get(ctx context.Context, id uint) (*entity.Cafe, error) {
	return u.repo.FindByID(ctx, id)
}

// Create registers a new café. The duplicate map URL check runs here,
// before the insert, so the handler gets a message it can put on the
// form; the unique index in the store is only a backstop.
func (u *CafeUsecase) Create(ctx context.Context, cafe *entity.Cafe) error {
	if err := u.checkMapURL(ctx, cafe.MapURL, 0); err != nil {
		return err
	}
	return u.repo.Create(ctx, cafe)
}

// Update applies full-replace semantics: every mutable field of the
// stored record is overwritten with the submitted value, including
// amenity flags being reset to false when absent from the submission.
func (u *CafeUsecase) Update(ctx context.Context, id uint, fields entity.Cafe) (*entity.Cafe, error) {
	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkMapURL(ctx, fields.MapURL, id); err != nil {
		return nil, err
	}

	fields.ID = current.ID
	if err := u.repo.Save(ctx, &fields); err != nil {
		return nil, fmt.Errorf("save cafe %d: %w", id, err)
	}
	return &fields, nil
}

// Delete removes a café. Authorization is the caller's responsibility;
// the store performs none.
func (u *CafeUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// checkMapURL rejects a map URL already registered to a different café.
// selfID exempts the record being edited from matching itself.
func (u *CafeUsecase) checkMapURL(ctx context.Context, mapURL string, selfID uint) error {
	existing, err := u.repo.FindByMapURL(ctx, mapURL)
	if errors.Is(err, ErrCafeNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup map url: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return ErrMapURLTaken
}
