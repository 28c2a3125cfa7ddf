package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mapleforkbistro/bistro-api/internal/audit"
	domain "github.com/mapleforkbistro/bistro-api/internal/domain/reservation"
	"github.com/mapleforkbistro/bistro-api/internal/httperr"
	"github.com/mapleforkbistro/bistro-api/internal/models"
)

// ---------- Fakes ----------

type fakeRepo struct {
	rows      []models.Reservation
	createErr error
	listErr   error

	lastLimit  int
	lastOffset int
}

func (f *fakeRepo) CreateReservation(_ context.Context, res *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	res.ID = uint(len(f.rows) + 1)
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.rows = append(f.rows, *res)
	return nil
}

func (f *fakeRepo) ListReservations(_ context.Context, limit, offset int) ([]models.Reservation, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= len(f.rows) {
		return []models.Reservation{}, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[offset:end], nil
}

type fakeDispatcher struct {
	events []audit.Event
}

func (f *fakeDispatcher) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

func validCreateInput() CreateReservationInput {
	return CreateReservationInput{
		GuestName:       "Jane Doe",
		GuestEmail:      "jane@x.com",
		GuestPhone:      "+15551234567",
		PartySize:       4,
		ReservationDate: time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
	}
}

// ---------- Tests ----------

func TestCreateReservationInsertsPendingRow(t *testing.T) {
	repo := &fakeRepo{}
	disp := &fakeDispatcher{}
	uc := NewCreateReservation(repo, disp, zap.NewNop())

	res, err := uc.Execute(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("rows inserted = %d, want 1", len(repo.rows))
	}
	if res.Status != "pending" {
		t.Errorf("Status = %q, want %q", res.Status, "pending")
	}
	if res.GuestName != "Jane Doe" {
		t.Errorf("GuestName = %q, want %q", res.GuestName, "Jane Doe")
	}
	if len(disp.events) != 1 || disp.events[0].Action != "reservation_created" {
		t.Errorf("audit events = %+v, want one reservation_created", disp.events)
	}
}

func TestCreateReservationRejectsBeforePersistence(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateReservationInput)
	}{
		{"party size too large", func(in *CreateReservationInput) { in.PartySize = 25 }},
		{"party size zero", func(in *CreateReservationInput) { in.PartySize = 0 }},
		{"invalid email", func(in *CreateReservationInput) { in.GuestEmail = "not-an-email" }},
		{"short phone", func(in *CreateReservationInput) { in.GuestPhone = "123" }},
		{"blank name", func(in *CreateReservationInput) { in.GuestName = " " }},
		{"zero date", func(in *CreateReservationInput) { in.ReservationDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			disp := &fakeDispatcher{}
			uc := NewCreateReservation(repo, disp, zap.NewNop())

			in := validCreateInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Execute() error = %v, want *domain.ValidationError", err)
			}
			if len(repo.rows) != 0 {
				t.Errorf("rows inserted = %d, want 0", len(repo.rows))
			}
			if len(disp.events) != 0 {
				t.Errorf("audit events dispatched = %d, want 0", len(disp.events))
			}
		})
	}
}

func TestCreateReservationMasksStorageFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	disp := &fakeDispatcher{}
	uc := NewCreateReservation(repo, disp, zap.NewNop())

	_, err := uc.Execute(context.Background(), validCreateInput())
	if !httperr.IsBusiness(err, "failed_to_create_reservation") {
		t.Fatalf("Execute() error = %v, want failed_to_create_reservation", err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("rows inserted = %d, want 0", len(repo.rows))
	}
	if len(disp.events) != 0 {
		t.Errorf("audit events dispatched = %d, want 0", len(disp.events))
	}
}

func TestCreateReservationIgnoresSubmittedStatus(t *testing.T) {
	// Status is not part of the input at all; two identical submissions
	// produce two pending rows.
	repo := &fakeRepo{}
	uc := NewCreateReservation(repo, &fakeDispatcher{}, zap.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(context.Background(), validCreateInput()); err != nil {
			t.Fatalf("Execute() #%d error = %v", i+1, err)
		}
	}

	if len(repo.rows) != 2 {
		t.Fatalf("rows inserted = %d, want 2", len(repo.rows))
	}
	for i, row := range repo.rows {
		if row.Status != "pending" {
			t.Errorf("rows[%d].Status = %q, want pending", i, row.Status)
		}
	}
}
