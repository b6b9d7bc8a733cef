package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bookingin/booking-api/docs"
	"github.com/bookingin/booking-api/internal/api/handler"
	"github.com/bookingin/booking-api/internal/api/middleware"
	"github.com/bookingin/booking-api/internal/core/ports"
	"github.com/bookingin/booking-api/internal/infrastructure/http/handlers"
)

// Dependencies is everything the HTTP layer needs. Revocations may be nil
// when the logout denylist is disabled.
type Dependencies struct {
	Logger      zerolog.Logger
	CORSOrigins []string
	Cookie      handler.CookieOptions

	Auth       ports.AuthService
	Users      ports.UserService
	Properties ports.PropertyService
	Rooms      ports.RoomService
	Reviews    ports.ReviewService

	Tokens      middleware.TokenVerifier
	Revocations middleware.RevocationChecker
	Readiness   map[string]handlers.Pinger

	// Registry receives the HTTP request metrics. Defaults to the global
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	// Request metrics wrap the logger so they see the status it renders.
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "bookingin",
		Registerer: registerer,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowCredentials: true,
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	userHandler := handler.NewUserHandler(deps.Users)
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	roomHandler := handler.NewRoomHandler(deps.Rooms)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)

	authn := middleware.Auth(deps.Tokens, deps.Revocations, deps.Logger)
	admin := middleware.RequireAdmin()
	owner := middleware.RequireOwnerOrAdmin("id")

	api := e.Group("/api")
	api.GET("", handler.Home)

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout, authn)

	// --- User routes ---
	api.GET("/users", userHandler.List, authn, admin)
	api.GET("/users/:id", userHandler.Get, authn, owner)
	api.PATCH("/users/:id", userHandler.Update, authn, owner)
	api.DELETE("/users/:id", userHandler.Delete, authn, owner)

	// --- Property routes ---
	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/:id", propertyHandler.Get)
	api.POST("/properties", propertyHandler.Create, authn, admin)
	api.PUT("/properties/:id", propertyHandler.Update, authn, admin)
	api.DELETE("/properties/:id", propertyHandler.Delete, authn, admin)

	// --- Room routes ---
	api.GET("/properties/:propId/rooms", roomHandler.List)
	api.POST("/properties/:propId/rooms", roomHandler.Create, authn, admin)
	api.PUT("/properties/:propId/rooms/:roomId", roomHandler.Update, authn, admin)
	api.DELETE("/properties/:propId/rooms/:roomId", roomHandler.Delete, authn, admin)

	// --- Review routes ---
	api.GET("/properties/:propId/reviews", reviewHandler.List)
	api.POST("/properties/:propId/reviews", reviewHandler.Create, authn)

	return e
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
