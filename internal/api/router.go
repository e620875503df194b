package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/deenanswers/qa-system/docs"
	"github.com/deenanswers/qa-system/internal/api/handler"
	"github.com/deenanswers/qa-system/internal/api/middleware"
	"github.com/deenanswers/qa-system/internal/core/service"
	mongodb "github.com/deenanswers/qa-system/internal/infrastructure/db/mongo"
	redisdb "github.com/deenanswers/qa-system/internal/infrastructure/db/redis"
	"github.com/deenanswers/qa-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret, jwtIssuer string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("qa"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	questionRepo := mongodb.NewQuestionRepository(db)
	cache := redisdb.NewAggregateCache(rdb)
	policy := service.NewAccessPolicy(userRepo)

	questionService := service.NewQuestionService(questionRepo, policy, cache, log)
	userService := service.NewUserService(userRepo, policy, log)
	maintenanceService := service.NewMaintenanceService(userRepo, questionRepo, policy, log)

	questionHandler := handler.NewQuestionHandler(questionService)
	adminHandler := handler.NewAdminHandler(questionService, maintenanceService)
	userHandler := handler.NewUserHandler(userService)
	webhookHandler := handler.NewWebhookHandler(log)

	auth := middleware.Auth(jwtSecret, jwtIssuer)
	optionalAuth := middleware.OptionalAuth(jwtSecret, jwtIssuer)

	// --- Public routes ---
	e.GET("/v1/questions", questionHandler.List)
	e.GET("/v1/questions/categories", questionHandler.Categories)
	e.GET("/v1/questions/:id", questionHandler.Get)
	e.POST("/v1/questions/:id/views", questionHandler.IncrementViews)
	e.POST("/v1/questions/:id/helpful", questionHandler.IncrementHelpful)
	e.POST("/webhooks/clerk", webhookHandler.Handle)

	// --- Authenticated routes ---
	e.POST("/v1/questions", questionHandler.Submit, auth)
	e.POST("/v1/users/store", userHandler.Store, auth)

	// --- Optional auth (soft-fail semantics) ---
	e.GET("/v1/me/questions", questionHandler.Mine, optionalAuth)
	e.GET("/v1/users/me", userHandler.Me, optionalAuth)
	// Promote is behind OptionalAuth, not Auth: the very first promotion
	// bootstraps the initial admin before any token-holding admin exists.
	e.POST("/v1/admin/users/:id/promote", userHandler.Promote, optionalAuth)

	// --- Admin routes (requireAdmin enforced in the service layer) ---
	admin := e.Group("/v1/admin", auth)
	admin.GET("/questions/pending", adminHandler.Pending)
	admin.POST("/questions", adminHandler.Create)
	admin.PUT("/questions/:id/answer", adminHandler.Answer)
	admin.PUT("/questions/:id/reject", adminHandler.Reject)
	admin.GET("/questions", adminHandler.ListAll)
	admin.DELETE("/questions/:id", adminHandler.Delete)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", userHandler.List)
	admin.PUT("/users/:id/role", userHandler.UpdateRole)
	admin.POST("/users/:id/toggle", userHandler.Toggle)
	admin.POST("/maintenance/fix", adminHandler.Fix)
	admin.POST("/maintenance/migrate", adminHandler.Migrate)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
