package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/api/handler"
	"github.com/vetclinic/clinic-client/internal/api/middleware"
	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/core/service"
	"github.com/vetclinic/clinic-client/internal/routes"
	"github.com/vetclinic/clinic-client/internal/session"
)

// NewRouter builds the Echo instance for the local client facade with all
// routes registered. Dashboard views sit behind the route guard; everything
// under /api is driven by the front-end forms.
func NewRouter(gateway ports.AuthGateway, sessions *session.Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("vetclinic_client"))

	// --- Dependencies ---
	loginController := service.NewLoginController(gateway, sessions, log)
	sessionHandler := handler.NewSessionHandler(loginController, gateway, sessions, log)
	registrationHandler := handler.NewRegistrationHandler(gateway, log)
	viewHandler := handler.NewViewHandler(sessions)

	// --- Session and registration API ---
	e.POST("/api/session", sessionHandler.Login)
	e.DELETE("/api/session", sessionHandler.Logout)
	e.GET("/api/session", sessionHandler.Current)
	e.POST("/api/registrations", registrationHandler.Register)

	// --- Views (guard targets) ---
	e.GET(routes.Login, viewHandler.Login)
	e.GET(routes.AdminDashboard, viewHandler.AdminDashboard, middleware.Guard(sessions, domain.RoleAdmin))
	e.GET(routes.UserDashboard, viewHandler.UserDashboard, middleware.Guard(sessions, domain.RoleUser))

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
