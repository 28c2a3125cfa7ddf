package reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ===============================
// Validation contract
// ===============================
//
// Server-side rules for a candidate reservation. The web form and the
// reserving client apply a stricter copy of these rules locally, but this
// copy is the authoritative one: anything that reaches persistence has
// passed it, whatever the caller did.

const (
	MinPartySize   = 1
	MaxPartySize   = 20
	MinPhoneLength = 10
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError carries every violated field rule for one input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return strings.Join(msgs, "; ")
}

// Input is a candidate reservation as submitted by a caller.
type Input struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	PartySize       int
	ReservationDate time.Time
	SpecialRequests string
}

// Validate checks in against the server-side contract and returns a
// *ValidationError naming every offending field, or nil.
func Validate(in Input) error {
	var fields []FieldError

	if strings.TrimSpace(in.GuestName) == "" {
		fields = append(fields, FieldError{"guestName", "Name is required"})
	}

	if _, err := mail.ParseAddress(in.GuestEmail); err != nil {
		fields = append(fields, FieldError{"guestEmail", "Valid email is required"})
	}

	if len(in.GuestPhone) < MinPhoneLength {
		fields = append(fields, FieldError{"guestPhone", "Valid phone number is required"})
	}

	if in.PartySize < MinPartySize || in.PartySize > MaxPartySize {
		fields = append(fields, FieldError{
			"partySize",
			fmt.Sprintf("Party size must be between %d and %d", MinPartySize, MaxPartySize),
		})
	}

	if in.ReservationDate.IsZero() {
		fields = append(fields, FieldError{"reservationDate", "Reservation date is required"})
	}

	if fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}
