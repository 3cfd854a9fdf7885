package services

import (
	"fmt"
	"strings"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"go.uber.org/zap"
)

// Trip bookings resolve their offer against this fixed route, as the search
// results themselves are not stored.
const (
	bookingLookupOrigin      = "BRU"
	bookingLookupDestination = "JFK"
)

type BookingService struct {
	Journeys        repositories.JourneyRepo
	Trips           repositories.TripRepo
	JourneyBookings *repositories.BookingRepo[models.JourneyBooking]
	TripBookings    *repositories.BookingRepo[models.TripBooking]

	Now       func() time.Time
	Logger    *zap.Logger
	RequestID string
	// ActorID is the authenticated user id, empty on public services.
	ActorID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return utils.NowUTC()
}

// CreateJourneyBooking books passengers on a catalogue journey.
func (s BookingService) CreateJourneyBooking(in models.JourneyBookingInput) (models.JourneyBooking, error) {
	if in.JourneyID == nil {
		return models.JourneyBooking{}, domain.ValidationError{Field: "journey_id", Msg: "field required"}
	}
	if s.JourneyBookings == nil {
		return models.JourneyBooking{}, domain.InternalError{Msg: "journey bookings are not available"}
	}
	journey, err := s.Journeys.GetByID(*in.JourneyID)
	if err != nil {
		return models.JourneyBooking{}, err
	}

	passengers := clampPassengers(in.Passengers)
	createdAt := s.now()
	booking := s.JourneyBookings.Create(func(id int64) models.JourneyBooking {
		return models.JourneyBooking{
			ID:         id,
			Journey:    journey,
			Passengers: passengers,
			TotalPrice: totalPrice(journey.PricePerPerson, passengers),
			Currency:   journey.Currency,
			CreatedAt:  createdAt,
		}
	})

	utils.LogEvent(s.Logger, s.RequestID, "bookings", "create_journey_booking",
		fmt.Sprintf("booking_id=%d journey_id=%d passengers=%d actor=%s", booking.ID, journey.ID, passengers, s.ActorID))
	return booking, nil
}

func (s BookingService) ListJourneyBookings() []models.JourneyBooking {
	if s.JourneyBookings == nil {
		return []models.JourneyBooking{}
	}
	return s.JourneyBookings.List()
}

func (s BookingService) GetJourneyBooking(id int64) (models.JourneyBooking, error) {
	if s.JourneyBookings != nil {
		if b, ok := s.JourneyBookings.Get(id); ok {
			return b, nil
		}
	}
	return models.JourneyBooking{}, domain.NotFoundError{Resource: "Booking"}
}

// CreateTripBooking books a travel offer for a named customer.
func (s BookingService) CreateTripBooking(in models.TripBookingInput) (models.TripBooking, error) {
	if in.TripID == nil {
		return models.TripBooking{}, domain.ValidationError{Field: "trip_id", Msg: "field required"}
	}
	if in.CustomerName == nil {
		return models.TripBooking{}, domain.ValidationError{Field: "customer_name", Msg: "field required"}
	}
	if in.Email == nil {
		return models.TripBooking{}, domain.ValidationError{Field: "email", Msg: "field required"}
	}
	if s.TripBookings == nil {
		return models.TripBooking{}, domain.InternalError{Msg: "trip bookings are not available"}
	}
	createdAt := s.now()
	// Offers are generated for the server's local calendar day.
	trip, err := s.Trips.Find(bookingLookupOrigin, bookingLookupDestination, domain.DateOf(createdAt.Local()), models.TripKindBoth, *in.TripID)
	if err != nil {
		return models.TripBooking{}, err
	}

	passengers := clampPassengers(in.Passengers)
	booking := s.TripBookings.Create(func(id int64) models.TripBooking {
		return models.TripBooking{
			ID:           id,
			Trip:         trip,
			CustomerName: *in.CustomerName,
			Email:        *in.Email,
			Passengers:   passengers,
			TotalPrice:   totalPrice(trip.Price, passengers),
			Currency:     trip.Currency,
			CreatedAt:    createdAt,
		}
	})

	utils.LogEvent(s.Logger, s.RequestID, "bookings", "create_trip_booking",
		fmt.Sprintf("booking_id=%d trip_id=%d passengers=%d", booking.ID, trip.ID, passengers))
	return booking, nil
}

// ListTripBookings returns all trip bookings, or only those whose email
// matches case-insensitively when email is non-empty.
func (s BookingService) ListTripBookings(email string) []models.TripBooking {
	if s.TripBookings == nil {
		return []models.TripBooking{}
	}
	if strings.TrimSpace(email) == "" {
		return s.TripBookings.List()
	}
	return s.TripBookings.Find(func(b models.TripBooking) bool {
		return utils.EqualFoldTrim(b.Email, email)
	})
}

func (s BookingService) GetTripBooking(id int64) (models.TripBooking, error) {
	if s.TripBookings != nil {
		if b, ok := s.TripBookings.Get(id); ok {
			return b, nil
		}
	}
	return models.TripBooking{}, domain.NotFoundError{Resource: "Booking"}
}

func clampPassengers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func totalPrice(unit float64, passengers int) float64 {
	return utils.RoundCents(unit * float64(passengers))
}
