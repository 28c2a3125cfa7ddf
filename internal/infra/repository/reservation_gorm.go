package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mapleforkbistro/bistro-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reservation (create)
// --------------------------------------------------

// CreateReservation inserts one row. There is no idempotency key: two
// identical submissions are two reservations.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// --------------------------------------------------
// Reservation (list)
// --------------------------------------------------

// ListReservations returns a page ordered by created_at DESC, newest
// submissions first.
func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	limit int,
	offset int,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}
