package handlers

import (
	"net/http"

	"travelapi/internal/domain/models"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /bookings
func (h Handler) CreateTripBooking(c *gin.Context) {
	var in models.TripBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	booking, err := h.bookings(c).CreateTripBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /bookings?email=
func (h Handler) ListTripBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.bookings(c).ListTripBookings(c.Query("email")))
}

// GET /bookings/:id/confirmation
func (h Handler) TripBookingConfirmation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	booking, err := h.bookings(c).GetTripBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.sendConfirmation(c, services.ConfirmationFromTripBooking(booking))
}

// POST /v1/bookings
func (h Handler) CreateJourneyBooking(c *gin.Context) {
	var in models.JourneyBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	booking, err := h.bookings(c).CreateJourneyBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /v1/bookings
func (h Handler) ListJourneyBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.bookings(c).ListJourneyBookings())
}

// GET /v1/bookings/:id/confirmation
func (h Handler) JourneyBookingConfirmation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	booking, err := h.bookings(c).GetJourneyBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.sendConfirmation(c, services.ConfirmationFromJourneyBooking(booking))
}

func (h Handler) sendConfirmation(c *gin.Context, conf services.Confirmation) {
	pdf, filename, err := h.docs(c).GenerateConfirmation(conf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
