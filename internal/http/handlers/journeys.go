package handlers

import (
	"net/http"

	"travelapi/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /journeys and GET /v1/journeys
func (h Handler) ListJourneys(c *gin.Context) {
	var filter models.JourneyFilter
	if !BindQueryOrError(c, &filter) {
		return
	}
	var ok bool
	if filter.GroupOnly, ok = QueryFlag(c, "group_only"); !ok {
		return
	}
	if filter.MaxPrice, ok = QueryFloat(c, "max_price"); !ok {
		return
	}
	c.JSON(http.StatusOK, h.Catalog.ListJourneys(filter))
}
