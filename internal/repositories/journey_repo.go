package repositories

import (
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

// JourneyRepo serves a fixed journey catalogue. The slice is never handed out
// directly so callers cannot mutate the fixtures.
type JourneyRepo struct {
	items []models.Journey
}

func NewJourneyRepo(items []models.Journey) JourneyRepo {
	return JourneyRepo{items: append([]models.Journey(nil), items...)}
}

// List returns a copy of the catalogue in fixture order.
func (r JourneyRepo) List() []models.Journey {
	out := make([]models.Journey, len(r.items))
	copy(out, r.items)
	return out
}

func (r JourneyRepo) GetByID(id int64) (models.Journey, error) {
	for _, j := range r.items {
		if j.ID == id {
			return j, nil
		}
	}
	return models.Journey{}, domain.NotFoundError{Resource: "Journey"}
}

// TripsJourneys is the catalogue of the public trips service.
func TripsJourneys() []models.Journey {
	return []models.Journey{
		{
			ID:             1,
			Destination:    "Paris",
			Title:          "Weekend in Paris",
			Description:    "3 days in Paris with city tour and Seine river cruise.",
			StartDate:      domain.NewDate(2025, time.May, 16),
			EndDate:        domain.NewDate(2025, time.May, 18),
			IsGroup:        false,
			MaxPeople:      2,
			PricePerPerson: 280.0,
			Currency:       "EUR",
		},
		{
			ID:             2,
			Destination:    "New York",
			Title:          "NYC Highlights (Group)",
			Description:    "5-day group trip with Times Square, Brooklyn, and museums.",
			StartDate:      domain.NewDate(2025, time.June, 2),
			EndDate:        domain.NewDate(2025, time.June, 6),
			IsGroup:        true,
			MaxPeople:      20,
			PricePerPerson: 950.0,
			Currency:       "EUR",
		},
		{
			ID:             3,
			Destination:    "Barcelona",
			Title:          "Barcelona Beach & Culture",
			Description:    "4 days between the beach, tapas, and Gaudí architecture.",
			StartDate:      domain.NewDate(2025, time.July, 10),
			EndDate:        domain.NewDate(2025, time.July, 13),
			IsGroup:        false,
			MaxPeople:      4,
			PricePerPerson: 520.0,
			Currency:       "EUR",
		},
		{
			ID:             4,
			Destination:    "Iceland",
			Title:          "Iceland Adventure (Group)",
			Description:    "7-day group tour: waterfalls, glaciers, and hot springs.",
			StartDate:      domain.NewDate(2025, time.August, 3),
			EndDate:        domain.NewDate(2025, time.August, 9),
			IsGroup:        true,
			MaxPeople:      12,
			PricePerPerson: 1850.0,
			Currency:       "EUR",
		},
	}
}

// AccountJourneys is the catalogue behind the authenticated account service.
func AccountJourneys() []models.Journey {
	return []models.Journey{
		{
			ID:             1,
			Destination:    "Paris",
			Title:          "Weekend in Paris",
			Description:    "3 days in Paris with city tour and Seine river cruise.",
			StartDate:      domain.NewDate(2025, time.March, 14),
			EndDate:        domain.NewDate(2025, time.March, 16),
			IsGroup:        false,
			MaxPeople:      4,
			PricePerPerson: 320.0,
			Currency:       "EUR",
		},
		{
			ID:             2,
			Destination:    "New York",
			Title:          "New York City Lights",
			Description:    "5 nights in NYC with Broadway tickets included.",
			StartDate:      domain.NewDate(2025, time.May, 1),
			EndDate:        domain.NewDate(2025, time.May, 6),
			IsGroup:        true,
			MaxPeople:      12,
			PricePerPerson: 980.0,
			Currency:       "EUR",
		},
		{
			ID:             3,
			Destination:    "Rome",
			Title:          "Rome & Vatican Discovery",
			Description:    "Guided tours of the Colosseum and Vatican Museums.",
			StartDate:      domain.NewDate(2025, time.April, 10),
			EndDate:        domain.NewDate(2025, time.April, 14),
			IsGroup:        true,
			MaxPeople:      20,
			PricePerPerson: 650.0,
			Currency:       "EUR",
		},
	}
}
