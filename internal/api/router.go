package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/savdo-crm/crm-api/docs"
	"github.com/savdo-crm/crm-api/internal/api/handler"
	"github.com/savdo-crm/crm-api/internal/api/middleware"
	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/service"
	mongodb "github.com/savdo-crm/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/savdo-crm/crm-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Repositories ---
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	watcher := mongodb.NewWatcher(db, log)

	// --- Redis-backed auth infrastructure ---
	limiter := redisdb.NewLoginLimiter(rdb)
	denylist := redisdb.NewTokenDenylist(rdb)
	resets := redisdb.NewResetTokenStore(rdb)

	// --- Services ---
	clientService := service.NewClientService(clientRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	userService := service.NewUserService(userRepo, log)
	analyticsService := service.NewAnalyticsService(clientRepo, orderRepo)
	authService := service.NewAuthService(userRepo, limiter, denylist, resets, jwtSecret, tokenTTL, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(analyticsService)
	streamHandler := handler.NewStreamHandler(watcher, log)

	// --- Health probes and operational surfaces (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/reset-password", authHandler.RequestPasswordReset)
	e.POST("/v1/auth/reset-password/confirm", authHandler.ConfirmPasswordReset)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(authService))

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me)

	v1.GET("/clients", clientHandler.List, middleware.RequirePermission(domain.PermViewClient))
	v1.GET("/clients/export", clientHandler.Export, middleware.RequirePermission(domain.PermViewClient))
	v1.GET("/clients/:id", clientHandler.Get, middleware.RequirePermission(domain.PermViewClient))
	v1.POST("/clients", clientHandler.Create, middleware.RequirePermission(domain.PermCreateClient))
	v1.PUT("/clients/:id", clientHandler.Update, middleware.RequirePermission(domain.PermEditClient))
	v1.DELETE("/clients/:id", clientHandler.Delete, middleware.RequirePermission(domain.PermDeleteClient))

	v1.GET("/orders", orderHandler.List, middleware.RequirePermission(domain.PermViewOrder))
	v1.GET("/orders/recent", orderHandler.Recent, middleware.RequirePermission(domain.PermViewOrder))
	v1.GET("/orders/export", orderHandler.Export, middleware.RequirePermission(domain.PermViewOrder))
	v1.GET("/orders/:id", orderHandler.Get, middleware.RequirePermission(domain.PermViewOrder))
	v1.POST("/orders", orderHandler.Create, middleware.RequirePermission(domain.PermCreateOrder))
	v1.PUT("/orders/:id", orderHandler.Update, middleware.RequirePermission(domain.PermEditOrder))
	v1.DELETE("/orders/:id", orderHandler.Delete, middleware.RequirePermission(domain.PermDeleteOrder))

	v1.GET("/users", userHandler.List, middleware.RequirePermission(domain.PermViewUser))
	v1.GET("/users/:id", userHandler.Get, middleware.RequirePermission(domain.PermViewUser))
	v1.POST("/users", userHandler.Create, middleware.RequirePermission(domain.PermCreateUser))
	v1.PUT("/users/:id", userHandler.Update, middleware.RequirePermission(domain.PermEditUser))
	v1.DELETE("/users/:id", userHandler.Delete, middleware.RequirePermission(domain.PermDeleteUser))

	v1.GET("/dashboard/stats", dashboardHandler.Stats, middleware.RequirePermission(domain.PermViewAnalytics))
	v1.GET("/dashboard/recent-orders", dashboardHandler.RecentOrders, middleware.RequirePermission(domain.PermViewAnalytics))

	// Stream does its own per-collection permission check.
	v1.GET("/stream/:collection", streamHandler.Stream)

	return e
}
