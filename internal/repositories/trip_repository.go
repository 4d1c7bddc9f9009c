package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderlust/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUserId(ctx context.Context, userId uuid.UUID) ([]db_models.Trip, error)
	FindByIdForUser(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*db_models.Trip, error)
	DeleteByIdForUser(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error)
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

func (r *tripRepository) ListByUserId(ctx context.Context, userId uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// FindByIdForUser filters by owner: a trip owned by another user is
// reported the same way as one that does not exist.
func (r *tripRepository) FindByIdForUser(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// DeleteByIdForUser reads before deleting so a repeat delete of the same id
// reports false rather than silently succeeding.
func (r *tripRepository) DeleteByIdForUser(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error) {
	trip, err := r.FindByIdForUser(ctx, id, userId)
	if err != nil {
		return false, err
	}
	if trip == nil {
		return false, nil
	}

	if err := r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}
