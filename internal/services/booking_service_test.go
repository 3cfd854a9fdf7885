package services

import (
	"testing"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2025, time.October, 5, 12, 30, 0, 0, time.UTC)

func newBookingService() BookingService {
	return BookingService{
		Journeys:        repositories.NewJourneyRepo(repositories.AccountJourneys()),
		JourneyBookings: repositories.NewBookingRepo[models.JourneyBooking](),
		TripBookings:    repositories.NewBookingRepo[models.TripBooking](),
		Now:             func() time.Time { return fixedNow },
		Logger:          zap.NewNop(),
	}
}

func TestCreateJourneyBooking(t *testing.T) {
	svc := newBookingService()

	b, err := svc.CreateJourneyBooking(models.JourneyBookingInput{JourneyID: ptr(int64(2)), Passengers: 3})
	if err != nil {
		t.Fatalf("CreateJourneyBooking error: %v", err)
	}
	if b.ID != 1 || b.Journey.ID != 2 || b.Passengers != 3 {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.TotalPrice != 2940 || b.Currency != "EUR" {
		t.Fatalf("total = %v %s, want 2940 EUR", b.TotalPrice, b.Currency)
	}
	if !b.CreatedAt.Equal(fixedNow) {
		t.Fatalf("created_at = %v", b.CreatedAt)
	}

	second, err := svc.CreateJourneyBooking(models.JourneyBookingInput{JourneyID: ptr(int64(1))})
	if err != nil {
		t.Fatalf("second booking error: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("ids should increase, got %d", second.ID)
	}
	if len(svc.ListJourneyBookings()) != 2 {
		t.Fatalf("expected 2 bookings listed")
	}
}

func TestCreateJourneyBookingClampsPassengers(t *testing.T) {
	svc := newBookingService()
	for _, n := range []int{0, -4} {
		b, err := svc.CreateJourneyBooking(models.JourneyBookingInput{JourneyID: ptr(int64(1)), Passengers: n})
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if b.Passengers != 1 || b.TotalPrice != 320 {
			t.Fatalf("passengers=%d: got %d passengers, total %v", n, b.Passengers, b.TotalPrice)
		}
	}
}

func TestCreateJourneyBookingUnknownJourney(t *testing.T) {
	svc := newBookingService()
	_, err := svc.CreateJourneyBooking(models.JourneyBookingInput{JourneyID: ptr(int64(42)), Passengers: 1})
	if !domain.IsNotFound(err) || err.Error() != "Journey not found" {
		t.Fatalf("expected Journey not found, got %v", err)
	}
	if len(svc.ListJourneyBookings()) != 0 {
		t.Fatalf("failed booking must not be stored")
	}

	if _, err := svc.CreateJourneyBooking(models.JourneyBookingInput{}); !domain.IsValidation(err) {
		t.Fatalf("missing journey id should be a validation error, got %v", err)
	}
}

func TestCreateTripBooking(t *testing.T) {
	svc := newBookingService()

	b, err := svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(1)), CustomerName: ptr("Jane"), Email: ptr("Jane@Example.com"), Passengers: 2})
	if err != nil {
		t.Fatalf("CreateTripBooking error: %v", err)
	}
	if b.ID != 1 || b.Trip.Kind != models.TripKindFlight || b.TotalPrice != 640 {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.Trip.Origin != "BRU" || b.Trip.Destination != "JFK" || b.Trip.DepartDate.String() != "2025-10-05" {
		t.Fatalf("trip should be resolved on today's BRU-JFK offers: %+v", b.Trip)
	}

	if _, err := svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(2)), CustomerName: ptr("Bob"), Email: ptr("bob@example.com")}); err != nil {
		t.Fatalf("hotel booking error: %v", err)
	}

	_, err = svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(7)), CustomerName: ptr("X"), Email: ptr("x@example.com")})
	if !domain.IsNotFound(err) || err.Error() != "Trip not found" {
		t.Fatalf("expected Trip not found, got %v", err)
	}

	blank, err := svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(2)), CustomerName: ptr(""), Email: ptr("")})
	if err != nil || blank.CustomerName != "" || blank.Email != "" {
		t.Fatalf("empty contact details should be accepted: %+v, %v", blank, err)
	}
	if _, err := svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(2)), Email: ptr("x@example.com")}); !domain.IsValidation(err) {
		t.Fatalf("missing customer name should be a validation error, got %v", err)
	}
}

func TestListTripBookingsByEmail(t *testing.T) {
	svc := newBookingService()
	for _, email := range []string{"jane@example.com", "bob@example.com", "JANE@example.com"} {
		if _, err := svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(2)), CustomerName: ptr("c"), Email: ptr(email)}); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	if all := svc.ListTripBookings(""); len(all) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(all))
	}
	jane := svc.ListTripBookings("Jane@Example.COM")
	if len(jane) != 2 || jane[0].ID != 1 || jane[1].ID != 3 {
		t.Fatalf("unexpected email filter result: %+v", jane)
	}
	if none := svc.ListTripBookings("nobody@example.com"); len(none) != 0 {
		t.Fatalf("expected no bookings, got %d", len(none))
	}
}

func TestGetBookings(t *testing.T) {
	svc := newBookingService()
	if _, err := svc.GetTripBooking(1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found before creation")
	}
	if _, err := svc.CreateTripBooking(models.TripBookingInput{TripID: ptr(int64(1)), CustomerName: ptr("c"), Email: ptr("e")}); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if b, err := svc.GetTripBooking(1); err != nil || b.ID != 1 {
		t.Fatalf("GetTripBooking(1) = %+v, %v", b, err)
	}
	if _, err := svc.GetJourneyBooking(1); !domain.IsNotFound(err) {
		t.Fatalf("journey ledger is separate from trip ledger")
	}
}

func TestCreateJourneyBookingLogsEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := newBookingService()
	svc.Logger = zap.New(core)
	svc.RequestID = "req-9"
	svc.ActorID = DemoUserID

	if _, err := svc.CreateJourneyBooking(models.JourneyBookingInput{JourneyID: ptr(int64(3)), Passengers: 2}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	entries := logs.FilterField(zap.String("action", "create_journey_booking")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one booking event, got %d", len(entries))
	}
	want := "booking_id=1 journey_id=3 passengers=2 actor=" + DemoUserID
	if entries[0].Message != want || entries[0].ContextMap()["request_id"] != "req-9" {
		t.Fatalf("unexpected event %q %v", entries[0].Message, entries[0].ContextMap())
	}
}
