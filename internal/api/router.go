package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/identity-service/internal/api/handler"
	"github.com/99minutos/identity-service/internal/api/middleware"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// Dependencies are the use cases and probes the router exposes.
type Dependencies struct {
	Create    ports.CreateUserUseCase
	Get       ports.GetUserUseCase
	Update    ports.UpdateUserUseCase
	Readiness map[string]handler.Pinger
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- User routes ---
	users := handler.NewUserHandler(deps.Create, deps.Get, deps.Update)
	v1 := e.Group("/api/v1/users")
	v1.POST("", users.Create)
	v1.GET("/:id", users.Get)
	v1.PUT("/:id", users.Update, middleware.Optional(deps.JWTSecret))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
