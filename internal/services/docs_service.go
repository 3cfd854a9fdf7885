package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"travelapi/internal/domain/models"
	"travelapi/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// Confirmation is the printable view of a booking of either kind.
type Confirmation struct {
	BookingID    int64
	Title        string
	Route        string
	Dates        string
	CustomerName string
	Email        string
	Passengers   int
	UnitPrice    float64
	TotalPrice   float64
	Currency     string
	CreatedAt    string
}

func ConfirmationFromJourneyBooking(b models.JourneyBooking) Confirmation {
	return Confirmation{
		BookingID:  b.ID,
		Title:      b.Journey.Title,
		Route:      b.Journey.Destination,
		Dates:      fmt.Sprintf("%s - %s", b.Journey.StartDate, b.Journey.EndDate),
		Passengers: b.Passengers,
		UnitPrice:  b.Journey.PricePerPerson,
		TotalPrice: b.TotalPrice,
		Currency:   b.Currency,
		CreatedAt:  utils.FormatDateTime(b.CreatedAt),
	}
}

func ConfirmationFromTripBooking(b models.TripBooking) Confirmation {
	dates := b.Trip.DepartDate.String()
	if b.Trip.ReturnDate != nil {
		dates += " - " + b.Trip.ReturnDate.String()
	}
	return Confirmation{
		BookingID:    b.ID,
		Title:        b.Trip.Title,
		Route:        fmt.Sprintf("%s -> %s", b.Trip.Origin, b.Trip.Destination),
		Dates:        dates,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Passengers:   b.Passengers,
		UnitPrice:    b.Trip.Price,
		TotalPrice:   b.TotalPrice,
		Currency:     b.Currency,
		CreatedAt:    utils.FormatDateTime(b.CreatedAt),
	}
}

// DocsService renders booking confirmations as PDF.
type DocsService struct {
	Logger    *zap.Logger
	RequestID string
}

// GenerateConfirmation returns the PDF bytes and a download filename.
func (s DocsService) GenerateConfirmation(c Confirmation) ([]byte, string, error) {
	utils.LogEvent(s.Logger, s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", c.BookingID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking      : #%d", c.BookingID),
		fmt.Sprintf("Trip         : %s", safe(plainArrows(c.Title), "-")),
		fmt.Sprintf("Route        : %s", safe(c.Route, "-")),
		fmt.Sprintf("Dates        : %s", safe(c.Dates, "-")),
	}
	if c.CustomerName != "" || c.Email != "" {
		lines = append(lines,
			fmt.Sprintf("Customer     : %s", safe(c.CustomerName, "-")),
			fmt.Sprintf("Email        : %s", safe(c.Email, "-")),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Passengers   : %d", c.Passengers),
		fmt.Sprintf("Unit price   : %s", utils.FormatPrice(c.UnitPrice, c.Currency)),
		fmt.Sprintf("Total        : %s", utils.FormatPrice(c.TotalPrice, c.Currency)),
		fmt.Sprintf("Booked at    : %s UTC", safe(c.CreatedAt, "-")),
	)
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This is a demo booking held in memory only. It is not a travel document.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("BOOKING_%d.pdf", c.BookingID), nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

var nonLatin1 = regexp.MustCompile(`[^\x00-\xFF]`)

// plainArrows keeps titles printable with the core PDF fonts.
func plainArrows(s string) string {
	s = strings.ReplaceAll(s, "→", "->")
	return nonLatin1.ReplaceAllString(s, "")
}
