package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/api/handler"
	"github.com/soyelectronico/storefront/internal/api/middleware"
	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// Dependencies carries everything the router needs. The session service is
// expected to be bootstrapped before the router starts serving.
type Dependencies struct {
	Sessions  ports.SessionService
	Catalog   ports.CatalogService
	Purchases ports.PurchaseService
	Admin     ports.AdminService

	// HealthTargets maps remote service names to base URLs for readiness.
	HealthTargets map[string]string
	HTTPClient    *http.Client

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	commerceHandler := handler.NewCommerceHandler(deps.Purchases, deps.Sessions)
	adminHandler := handler.NewAdminHandler(deps.Admin, deps.Sessions)

	// --- Session routes ---
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/register", sessionHandler.Register)
	e.POST("/session/logout", sessionHandler.Logout)
	e.GET("/session", sessionHandler.Current)

	// --- Catalog routes (public) ---
	e.GET("/catalog", catalogHandler.List)
	e.GET("/catalog/:id", catalogHandler.Get)

	// --- Privileged routes, gated by the access policy. The coordinators
	// re-check the same policy before any network dispatch. ---
	e.POST("/purchase", commerceHandler.Purchase,
		middleware.RequireAction(deps.Sessions, domain.ActionPurchase))
	e.GET("/orders/mine", commerceHandler.MyOrders,
		middleware.RequireAction(deps.Sessions, domain.ActionViewOwnOrders))
	e.POST("/admin/products", adminHandler.Create,
		middleware.RequireAction(deps.Sessions, domain.ActionManageCatalog))
	e.PUT("/admin/products/:id", adminHandler.Update,
		middleware.RequireAction(deps.Sessions, domain.ActionManageCatalog))

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.HTTPClient, deps.HealthTargets)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are the remote services up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
