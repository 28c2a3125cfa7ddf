package reservation

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/mapleforkbistro/bistro-api/internal/domain/reservation"
	"github.com/mapleforkbistro/bistro-api/internal/dto"
)

const (
	DefaultLimit  = 50
	DefaultOffset = 0
)

type ListReservations struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewListReservations(
	repo domain.Repository,
	log *zap.Logger,
) *ListReservations {
	return &ListReservations{
		repo: repo,
		log:  log,
	}
}

// Execute returns one page of reservations, newest first. Non-positive
// limit falls back to DefaultLimit, negative offset to DefaultOffset.
//
// A storage failure is logged and surfaced as an empty page, so callers
// cannot tell a broken store from an empty one. Kept on purpose: the
// simple contract is what the dashboard consumes today.
func (uc *ListReservations) Execute(
	ctx context.Context,
	limit int,
	offset int,
) []dto.ReservationListDTO {

	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}

	reservations, err := uc.repo.ListReservations(ctx, limit, offset)
	if err != nil {
		uc.log.Error("failed to list reservations",
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err),
		)
		return []dto.ReservationListDTO{}
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:              res.ID,
			GuestName:       res.GuestName,
			GuestEmail:      res.GuestEmail,
			GuestPhone:      res.GuestPhone,
			PartySize:       res.PartySize,
			ReservationDate: res.ReservationDate,
			SpecialRequests: res.SpecialRequests,
			Status:          res.Status,
			CreatedAt:       res.CreatedAt,
		})
	}

	return out
}
