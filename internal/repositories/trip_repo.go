package repositories

import (
	"fmt"
	"strings"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

const (
	flightTripID int64 = 1
	hotelTripID  int64 = 2
)

// TripRepo synthesizes flight and hotel offers for a route and day.
type TripRepo struct{}

// Generate builds the offers for origin → destination on date. kind selects
// "flight", "hotel" or "both"; any other kind produces no offers.
func (TripRepo) Generate(origin, destination string, date domain.Date, kind string) []models.Trip {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)
	kind = strings.ToLower(kind)

	out := []models.Trip{}

	if kind == models.TripKindBoth || kind == models.TripKindFlight {
		airline := "Velu Air"
		out = append(out, models.Trip{
			ID:          flightTripID,
			Kind:        models.TripKindFlight,
			Origin:      origin,
			Destination: destination,
			DepartDate:  date,
			Title:       fmt.Sprintf("%s → %s direct flight", origin, destination),
			Description: "Non-stop flight with 1 checked bag included.",
			Price:       320.0,
			Currency:    "EUR",
			Airline:     &airline,
		})
	}

	if kind == models.TripKindBoth || kind == models.TripKindHotel {
		hotel := "Hotel Velu Plaza"
		rating := 4.4
		out = append(out, models.Trip{
			ID:          hotelTripID,
			Kind:        models.TripKindHotel,
			Origin:      destination,
			Destination: destination,
			DepartDate:  date,
			Title:       fmt.Sprintf("3-night stay in %s", destination),
			Description: "Modern 4★ hotel near city center, breakfast included.",
			Price:       210.0,
			Currency:    "EUR",
			HotelName:   &hotel,
			Rating:      &rating,
		})
	}

	return out
}

// Find resolves an offer id within a generated set.
func (r TripRepo) Find(origin, destination string, date domain.Date, kind string, id int64) (models.Trip, error) {
	for _, t := range r.Generate(origin, destination, date, kind) {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "Trip"}
}
