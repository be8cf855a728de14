package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/naratornb/leave-and-shift-project/docs"
	"github.com/naratornb/leave-and-shift-project/internal/api/handler"
	"github.com/naratornb/leave-and-shift-project/internal/api/middleware"
	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/service"
	"github.com/naratornb/leave-and-shift-project/internal/infrastructure/config"
	mongodb "github.com/naratornb/leave-and-shift-project/internal/infrastructure/db/mongo"
	redisdb "github.com/naratornb/leave-and-shift-project/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("workforce"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	shiftRepo := mongodb.NewShiftRepository(db)
	revocations := redisdb.NewRevocationList(rdb, cfg.TokenTTL)

	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	employeeService := service.NewEmployeeService(accountRepo, revocations, log)
	shiftService := service.NewShiftService(shiftRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	shiftHandler := handler.NewShiftHandler(shiftService)

	authn := middleware.Auth(cfg.JWTSecret, revocations)
	staffOnly := middleware.RBAC(domain.RoleManager, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleEmployee, domain.RoleManager, domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Employee routes ---
	employees := e.Group("/employees", authn)
	employees.GET("", employeeHandler.List, staffOnly)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.GET("/:id", employeeHandler.Get, staffOnly)
	// Self-updates are allowed for employees; the service enforces the
	// per-target rule.
	employees.PUT("/:id", employeeHandler.Update, anyRole)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)
	employees.PUT("/:id/activate", employeeHandler.Activate, staffOnly)
	employees.PUT("/:id/deactivate", employeeHandler.Deactivate, staffOnly)

	// --- Shift routes ---
	shifts := e.Group("/shifts", authn, staffOnly)
	shifts.GET("", shiftHandler.List)
	shifts.POST("", shiftHandler.Create)
	shifts.GET("/:id", shiftHandler.Get)
	shifts.PUT("/:id", shiftHandler.Update)
	// Shift deletion stays unexposed for now; the handler and policy support
	// it, flip this on once the rollout is agreed.
	// shifts.DELETE("/:id", shiftHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
