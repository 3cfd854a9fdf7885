package handlers

import (
	"net/http"

	"travelapi/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /v1/auth/login
func (h Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	resp, err := h.auth(c).Login(*req.Email, *req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
