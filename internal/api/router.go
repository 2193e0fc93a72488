package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/auditsafe/audit-insights/internal/api/handler"
	"github.com/auditsafe/audit-insights/internal/core/ports"
	"github.com/auditsafe/audit-insights/internal/core/service"
	"github.com/auditsafe/audit-insights/internal/infrastructure/config"
	mongodb "github.com/auditsafe/audit-insights/internal/infrastructure/db/mongo"
	redisdb "github.com/auditsafe/audit-insights/internal/infrastructure/db/redis"
	"github.com/auditsafe/audit-insights/internal/infrastructure/extractor"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All shared clients (db, rdb, model) are created once by the caller and
// reused for the life of the process.
func NewRouter(db *mongo.Database, rdb *redis.Client, model ports.TextGenerator, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // the SPA is served from a different origin
	e.Use(echomiddleware.BodyLimit(cfg.Upload.MaxBytes))
	e.Use(echoprometheus.NewMiddleware("auditsafe"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	analysisService := service.NewAnalysisService(model, redisdb.NewResultCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	uploadHandler := handler.NewUploadHandler(extractor.NewPDFExtractor(), cfg.Upload.Dir, log)

	// --- Auth & profile routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/get-profiles", profileHandler.Get)
	e.POST("/api/edit-profiles", profileHandler.Edit)

	// --- Ingestion & analysis routes ---
	e.POST("/api/uploadPDF", uploadHandler.Upload)
	e.POST("/api/summarize-audit-report", analysisHandler.Summarize)
	e.POST("/api/get-analysis", analysisHandler.Analyze)
	e.POST("/api/generate-analysis", analysisHandler.Analyze) // legacy alias, same contract
	e.POST("/api/get-suggestion", analysisHandler.Suggest)
	e.POST("/api/get-insights", analysisHandler.Insights)
	e.POST("/api/get-visualization", analysisHandler.Visualize)

	// --- Health probes & operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
