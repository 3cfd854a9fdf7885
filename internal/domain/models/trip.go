package models

import "travelapi/internal/domain"

const (
	TripKindFlight = "flight"
	TripKindHotel  = "hotel"
	TripKindBoth   = "both"
)

// Trip is a synthesized flight or hotel offer. Optional fields are null in
// JSON when they do not apply to the kind.
type Trip struct {
	ID          int64        `json:"id"`
	Kind        string       `json:"kind"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	DepartDate  domain.Date  `json:"depart_date"`
	ReturnDate  *domain.Date `json:"return_date"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Currency    string       `json:"currency"`
	Airline     *string      `json:"airline"`
	HotelName   *string      `json:"hotel_name"`
	Rating      *float64     `json:"rating"`
}
