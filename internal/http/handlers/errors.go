package handlers

import (
	"net/http"

	"travelapi/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusUnprocessableEntity, err.Error(), nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsInternal(err):
		// InternalError messages are written for clients; the cause stays in the log.
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, err.Error(), nil)
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
