package api

import (
	"fmt"
	"time"

	intconfig "travelapi/internal/config"
	"travelapi/internal/domain/models"
	h "travelapi/internal/http/handlers"
	"travelapi/internal/http/middleware"
	"travelapi/internal/repositories"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health names reported by each service.
var healthNames = map[string]string{
	intconfig.ServiceTrips:   "my_trips_api",
	intconfig.ServiceTravel:  "travel_api",
	intconfig.ServiceAccount: "account_api",
}

type Options struct {
	Logger *zap.Logger
	// Now overrides the booking clock; nil uses the wall clock.
	Now func() time.Time
}

// NewRouter builds the gin engine of one service with its own in-memory state.
func NewRouter(service string, env intconfig.Env, opts Options) (*gin.Engine, error) {
	name, ok := healthNames[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named(service)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		gin.Recovery(),
		middleware.SecureHeaders(),
		middleware.CORS(env.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(h.NoRoute)
	r.NoMethod(h.NoMethod)

	handler := h.Handler{
		Service: name,
		Logger:  logger,
		Auth: services.AuthService{
			JWTSecret: []byte(env.AuthJWTSecret),
			TokenTTL:  env.AuthTokenTTL,
		},
		Bookings: services.BookingService{Now: opts.Now},
	}

	r.GET("/health", handler.Health)
	r.GET("/routes", h.Routes(r))

	switch service {
	case intconfig.ServiceTrips:
		mountTrips(r, handler)
	case intconfig.ServiceTravel:
		mountTravel(r, handler)
	case intconfig.ServiceAccount:
		mountAccount(r, handler)
	}

	return r, nil
}

func mountTrips(r *gin.Engine, handler h.Handler) {
	handler.Catalog = services.CatalogService{Journeys: repositories.NewJourneyRepo(repositories.TripsJourneys())}

	r.GET("/journeys", handler.ListJourneys)
}

func mountTravel(r *gin.Engine, handler h.Handler) {
	handler.Bookings.TripBookings = repositories.NewBookingRepo[models.TripBooking]()

	r.GET("/search/trips", handler.SearchTrips)

	bookings := r.Group("/bookings")
	bookings.POST("", handler.CreateTripBooking)
	bookings.GET("", handler.ListTripBookings)
	bookings.GET("/:id/confirmation", handler.TripBookingConfirmation)
}

func mountAccount(r *gin.Engine, handler h.Handler) {
	journeys := repositories.NewJourneyRepo(repositories.AccountJourneys())
	handler.Catalog = services.CatalogService{Journeys: journeys}
	handler.Bookings.Journeys = journeys
	handler.Bookings.JourneyBookings = repositories.NewBookingRepo[models.JourneyBooking]()

	v1 := r.Group("/v1")
	v1.POST("/auth/login", handler.Login)

	authed := v1.Group("", middleware.RequireBearer(handler.Auth))
	authed.GET("/journeys", handler.ListJourneys)
	authed.POST("/bookings", handler.CreateJourneyBooking)
	authed.GET("/bookings", handler.ListJourneyBookings)
	authed.GET("/bookings/:id/confirmation", handler.JourneyBookingConfirmation)
}
