package services

import (
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"
)

// CatalogService answers journey and trip searches.
type CatalogService struct {
	Journeys repositories.JourneyRepo
	Trips    repositories.TripRepo
}

// ListJourneys returns the catalogue narrowed by f.
func (s CatalogService) ListJourneys(f models.JourneyFilter) []models.Journey {
	return FilterJourneys(s.Journeys.List(), f)
}

// FilterJourneys applies destination, group and price predicates in that order.
func FilterJourneys(items []models.Journey, f models.JourneyFilter) []models.Journey {
	out := make([]models.Journey, 0, len(items))
	for _, j := range items {
		if f.Destination != "" && !utils.ContainsFold(j.Destination, f.Destination) {
			continue
		}
		if f.GroupOnly && !j.IsGroup {
			continue
		}
		if f.MaxPrice != nil && j.PricePerPerson > *f.MaxPrice {
			continue
		}
		out = append(out, j)
	}
	return out
}

// SearchTrips validates q and returns the matching offers.
func (s CatalogService) SearchTrips(q models.TripQuery) ([]models.Trip, error) {
	if err := validateAirportCode("origin", q.Origin); err != nil {
		return nil, err
	}
	if err := validateAirportCode("destination", q.Destination); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(q.TravelDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "travel_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	trips := s.Trips.Generate(q.Origin, q.Destination, date, q.Kind)
	if q.MaxPrice == nil {
		return trips, nil
	}
	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if t.Price <= *q.MaxPrice {
			out = append(out, t)
		}
	}
	return out, nil
}

func validateAirportCode(field, v string) error {
	n := len([]rune(v))
	if n < 3 || n > 5 {
		return domain.ValidationError{Field: field, Msg: "must be 3 to 5 characters"}
	}
	return nil
}
