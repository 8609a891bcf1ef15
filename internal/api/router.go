package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/buy01/storefront-gateway/internal/api/handler"
	"github.com/buy01/storefront-gateway/internal/api/middleware"
	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/ports"
	"github.com/buy01/storefront-gateway/internal/core/session"
)

// Deps bundles everything the router needs.
type Deps struct {
	Store    *session.Store
	Creds    ports.CredentialExchange
	Flow     ports.SignupFlow
	Products ports.ProductAPI
	Carts    ports.CartAPI
	Orders   ports.OrderAPI
	Redis    *redis.Client
	Upstream handler.Pinger
	Cookie   handler.CookieConfig
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.LoadSession(deps.Store, deps.Cookie.Name))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Creds, deps.Flow, deps.Cookie, deps.Log)
	storeHandler := handler.NewStorefrontHandler(deps.Products, deps.Carts, deps.Orders)

	// --- Auth ---
	e.POST("/login", authHandler.Login)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me)

	// --- Storefront ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/products")
	})
	e.GET("/products", storeHandler.ListProducts)
	e.GET("/products/:id", storeHandler.GetProduct)

	cart := e.Group("/cart", middleware.RequireRole(domain.RoleClient))
	cart.GET("", storeHandler.GetCart)
	cart.POST("", storeHandler.AddToCart)
	cart.PUT("/:productId", storeHandler.UpdateCartItem)
	cart.DELETE("/:productId", storeHandler.RemoveCartItem)

	// Each protected destination declares exactly one required role.
	e.GET("/seller/dashboard", storeHandler.Dashboard, middleware.RequireRole(domain.RoleSeller))
	e.GET("/client/dashboard", storeHandler.Dashboard, middleware.RequireRole(domain.RoleClient))

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis, deps.Upstream)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
