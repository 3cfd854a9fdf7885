package handlers

import (
	"travelapi/internal/http/middleware"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the services behind one HTTP service.
type Handler struct {
	Service  string
	Catalog  services.CatalogService
	Bookings services.BookingService
	Auth     services.AuthService
	Docs     services.DocsService
	Logger   *zap.Logger
}

func (h Handler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.NewNop()
}

func (h Handler) bookings(c *gin.Context) services.BookingService {
	svc := h.Bookings
	svc.Logger = h.logger()
	svc.RequestID = middleware.GetRequestID(c)
	if user, ok := middleware.CurrentUser(c); ok {
		svc.ActorID = user.UserID
	}
	return svc
}

func (h Handler) auth(c *gin.Context) services.AuthService {
	svc := h.Auth
	svc.Logger = h.logger()
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

func (h Handler) docs(c *gin.Context) services.DocsService {
	svc := h.Docs
	svc.Logger = h.logger()
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}
