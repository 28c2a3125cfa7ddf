package reservation

import (
	"context"

	"github.com/mapleforkbistro/bistro-api/internal/models"
)

type Repository interface {
	// -------- Reservation (create) --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reservation (list) --------
	ListReservations(
		ctx context.Context,
		limit int,
		offset int,
	) ([]models.Reservation, error)
}
