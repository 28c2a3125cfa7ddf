package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mapleforkbistro/bistro-api/internal/timezone"
)

// ErrSubmitInFlight is returned when a second submit starts before the
// first has finished; one reservation request at a time per client.
var ErrSubmitInFlight = errors.New("a reservation request is already in flight")

// GenericFailureMessage is what guests see when the request itself
// fails; details stay on the server.
const GenericFailureMessage = "Failed to create reservation. Please try again or contact us directly."

type Client struct {
	baseURL string
	httpc   *http.Client
	loc     *time.Location

	mu   sync.Mutex
	busy bool
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		loc:     timezone.Location(""),
	}
}

// --------- Wire shapes ---------

type createRequest struct {
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	PartySize       int       `json:"partySize"`
	ReservationDate time.Time `json:"reservationDate"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
}

type CreateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// GuestName and When echo the submitted form for the confirmation
	// notice.
	GuestName string    `json:"-"`
	When      time.Time `json:"-"`
}

// Submit validates the form locally and, only if it passes, posts it to
// the reservations API. Field failures return a FieldErrors without any
// network call.
func (c *Client) Submit(ctx context.Context, form Form) (*CreateResult, error) {
	if errs := form.Validate(); errs != nil {
		return nil, errs
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.busy = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	when, err := form.ReservationInstant(c.loc)
	if err != nil {
		return nil, FieldErrors{"reservationDate": "Please select a valid date and time"}
	}

	body, err := json.Marshal(createRequest{
		GuestName:       form.GuestName,
		GuestEmail:      form.GuestEmail,
		GuestPhone:      form.GuestPhone,
		PartySize:       form.PartySize,
		ReservationDate: when,
		SpecialRequests: form.SpecialRequests,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/reservations",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}

	var result CreateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}

	result.GuestName = form.GuestName
	result.When = when
	return &result, nil
}
