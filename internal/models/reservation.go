package models

import "time"

// Reservation is a guest's request to book a table. Rows are only ever
// created through the public create endpoint, always with status "pending";
// status transitions are handled by staff tooling outside this service.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestName  string `gorm:"size:255;not null" json:"guest_name"`
	GuestEmail string `gorm:"size:320;not null" json:"guest_email"`
	GuestPhone string `gorm:"size:20;not null" json:"guest_phone"`

	PartySize       int       `gorm:"not null" json:"party_size"`
	ReservationDate time.Time `gorm:"not null" json:"reservation_date"`

	SpecialRequests string `gorm:"type:text" json:"special_requests"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
