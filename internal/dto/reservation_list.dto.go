package dto

import "time"

type ReservationListDTO struct {
	ID              uint      `json:"id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	PartySize       int       `json:"party_size"`
	ReservationDate time.Time `json:"reservation_date"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
