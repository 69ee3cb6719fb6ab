package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripwise/internal/models/db_models"
)

// TripRepository is the trip store. Records are created once and never
// updated; reads are by id or by owner, newest first.
type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByOwner(ctx context.Context, ownerId string) ([]db_models.Trip, error)
	GetById(ctx context.Context, tripId string) (*db_models.Trip, error)
	DeleteById(ctx context.Context, tripId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

// ListByOwner returns the owner's trips ordered by creation time descending.
// A zero CreatedAt sorts after all timestamped records.
func (r *tripRepository) ListByOwner(ctx context.Context, ownerId string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}

// GetById returns nil without error when the record is absent; the service
// layer maps that to a not-found failure.
func (r *tripRepository) GetById(ctx context.Context, tripId string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

// DeleteById removes the record; deleting an absent id succeeds.
func (r *tripRepository) DeleteById(ctx context.Context, tripId string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", tripId).Error
}
