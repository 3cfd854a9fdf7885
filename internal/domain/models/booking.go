package models

import "time"

// JourneyBooking is an account-scoped reservation of a Journey.
type JourneyBooking struct {
	ID         int64     `json:"id"`
	Journey    Journey   `json:"journey"`
	Passengers int       `json:"passengers"`
	TotalPrice float64   `json:"total_price"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

func (b JourneyBooking) BookingID() int64 { return b.ID }

// TripBooking is a reservation of a travel offer made with contact details.
type TripBooking struct {
	ID           int64     `json:"id"`
	Trip         Trip      `json:"trip"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Passengers   int       `json:"passengers"`
	TotalPrice   float64   `json:"total_price"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"-"`
}

func (b TripBooking) BookingID() int64 { return b.ID }

// JourneyBookingInput is the payload of POST /v1/bookings.
type JourneyBookingInput struct {
	JourneyID  *int64 `json:"journey_id" binding:"required"`
	Passengers int    `json:"passengers"`
}

// TripBookingInput is the payload of POST /bookings.
type TripBookingInput struct {
	TripID       *int64  `json:"trip_id" binding:"required"`
	CustomerName *string `json:"customer_name" binding:"required"`
	Email        *string `json:"email" binding:"required"`
	Passengers   int     `json:"passengers"`
}
