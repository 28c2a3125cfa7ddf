package reservation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mapleforkbistro/bistro-api/internal/audit"
	domain "github.com/mapleforkbistro/bistro-api/internal/domain/reservation"
	"github.com/mapleforkbistro/bistro-api/internal/httperr"
	"github.com/mapleforkbistro/bistro-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	PartySize       int
	ReservationDate time.Time
	SpecialRequests string
}

// ======================================================
// USE CASE
// ======================================================

// AuditDispatcher records reservation events off the request path.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type CreateReservation struct {
	repo  domain.Repository
	audit AuditDispatcher
	log   *zap.Logger
}

func NewCreateReservation(
	repo domain.Repository,
	auditor AuditDispatcher,
	log *zap.Logger,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: auditor,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the input, persists the reservation with its initial
// status and returns the stored row. Validation failures come back as
// *domain.ValidationError before persistence is touched; storage failures
// come back as the generic failed_to_create_reservation business error —
// the cause is logged here and never shown to the caller.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if err := domain.Validate(domain.Input{
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		PartySize:       in.PartySize,
		ReservationDate: in.ReservationDate,
		SpecialRequests: in.SpecialRequests,
	}); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		PartySize:       in.PartySize,
		ReservationDate: in.ReservationDate,
		SpecialRequests: in.SpecialRequests,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		uc.log.Error("failed to create reservation",
			zap.String("guest_email", in.GuestEmail),
			zap.Error(err),
		)
		return nil, httperr.ErrBusiness("failed_to_create_reservation")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"party_size":       res.PartySize,
			"reservation_date": res.ReservationDate,
		},
	})

	return res, nil
}
