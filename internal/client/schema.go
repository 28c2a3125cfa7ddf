package client

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	domain "github.com/mapleforkbistro/bistro-api/internal/domain/reservation"
)

// ===============================
// Client-side schema
// ===============================
//
// Stricter than the server contract: a form that passes here never
// reaches the network with input the server would reject, but the server
// re-checks everything regardless.

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

// DefaultTime fills in the time of day when the guest picks only a date.
const DefaultTime = "19:00"

// Form holds the guest's raw input. DateTime uses the HTML
// datetime-local shape, "2006-01-02T15:04"; the time part may be absent.
type Form struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	PartySize       int
	DateTime        string
	SpecialRequests string
}

// FieldErrors maps an offending field to its message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// Validate applies the client schema and returns one message per
// offending field. An empty map means the form may be submitted.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(f.GuestName)) < 2 {
		errs["guestName"] = "Name must be at least 2 characters"
	}

	if _, err := mail.ParseAddress(f.GuestEmail); err != nil {
		errs["guestEmail"] = "Please enter a valid email"
	}

	if !phonePattern.MatchString(f.GuestPhone) {
		errs["guestPhone"] = "Please enter a valid phone number"
	}

	if f.PartySize < domain.MinPartySize {
		errs["partySize"] = fmt.Sprintf("Party size must be at least %d", domain.MinPartySize)
	} else if f.PartySize > domain.MaxPartySize {
		errs["partySize"] = fmt.Sprintf("Party size cannot exceed %d", domain.MaxPartySize)
	}

	if strings.TrimSpace(f.DateTime) == "" {
		errs["reservationDate"] = "Please select a date and time"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ReservationInstant converts the datetime-local input into an absolute
// instant in the restaurant's zone, defaulting a missing time component
// to DefaultTime.
func (f Form) ReservationInstant(loc *time.Location) (time.Time, error) {
	datePart, timePart, found := strings.Cut(f.DateTime, "T")
	if !found || timePart == "" {
		timePart = DefaultTime
	}

	return time.ParseInLocation("2006-01-02 15:04", datePart+" "+timePart, loc)
}
