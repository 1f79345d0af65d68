package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/esas/tree-species-api/internal/api/handler"
	"github.com/esas/tree-species-api/internal/api/middleware"
	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

// Services groups the core services the router exposes.
type Services struct {
	Auth    ports.AuthService
	Gardens ports.GardenService
	Species ports.SpeciesService
	Videos  ports.VideoService
	Points  ports.PointService
}

// RouterConfig carries the HTTP surface options.
type RouterConfig struct {
	AllowedOrigins []string
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]handler.Pinger
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry, which also holds the auth counters.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPut, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "esas",
		Registerer: registerer,
	}))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	// --- Guards ---
	verify := middleware.Auth(svc.Auth)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/user", authHandler.Me, verify)

	// --- Gardens ---
	gardens := handler.NewGardenHandler(svc.Gardens)
	api.GET("/gardens", gardens.List)
	api.GET("/gardens/:gardenId", gardens.Get)
	api.GET("/gardens/:id/panoramic-garden", gardens.Panoramic)
	api.POST("/gardens", gardens.Create, verify)
	api.DELETE("/gardens/:gardenId", gardens.Delete, verify, admin)

	// --- Species ---
	species := handler.NewSpeciesHandler(svc.Species)
	api.GET("/species", species.List)
	api.GET("/species/:id", species.Get)
	api.POST("/species", species.Create, verify)
	api.PATCH("/species/:id", species.Update, verify)
	api.DELETE("/species/:id", species.Delete, verify, admin)

	// --- Videos ---
	videos := handler.NewVideoHandler(svc.Videos)
	api.GET("/videos", videos.List)
	api.POST("/videos", videos.Create, verify, admin)
	api.PUT("/videos/:id", videos.Update, verify, admin)
	api.DELETE("/videos/:id", videos.Delete, verify, admin)

	// --- Points of interest ---
	points := handler.NewPointHandler(svc.Points)
	api.GET("/points-of-interest", points.List)
	api.GET("/points-of-interest/:id", points.Get)
	api.POST("/points-of-interest", points.Create, verify)
	api.PUT("/points-of-interest/:id", points.Update, verify)
	api.DELETE("/points-of-interest/:id", points.Delete, verify, admin)

	// --- Health checks (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
