package models

import "time"

// Tour is one bookable catalog entry. Records are seeded at bootstrap and
// never updated afterwards.
type Tour struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        int     `json:"price"`
	DurationDays float64 `json:"duration_days"`
	Available    bool    `json:"available"`
}

// Booking is a customer reservation against one tour. The id and created_at
// are assigned by the booking workflow, never by the caller.
type Booking struct {
	ID            string    `json:"id"`
	TourID        string    `json:"tour_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Seats         int       `json:"seats"`
	CreatedAt     time.Time `json:"created_at"`
}
