package handlers

import (
	"net/http"

	"travelapi/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /search/trips
func (h Handler) SearchTrips(c *gin.Context) {
	var q models.TripQuery
	if !BindQueryOrError(c, &q) {
		return
	}
	kind, ok := c.GetQuery("kind")
	if !ok {
		kind = models.TripKindBoth
	}
	q.Kind = kind
	if q.MaxPrice, ok = QueryFloat(c, "max_price"); !ok {
		return
	}
	trips, err := h.Catalog.SearchTrips(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}
