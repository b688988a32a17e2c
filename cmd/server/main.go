// Package main runs the event marketplace HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eventra/backend/config"
	"github.com/eventra/backend/internal/auth"
	"github.com/eventra/backend/internal/catalog"
	"github.com/eventra/backend/internal/emaillogs"
	"github.com/eventra/backend/internal/events"
	"github.com/eventra/backend/internal/middleware"
	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/internal/organizers"
	"github.com/eventra/backend/internal/review"
	"github.com/eventra/backend/internal/uploads"
	"github.com/eventra/backend/pkg/database"
	"github.com/eventra/backend/pkg/queue"
	"github.com/eventra/backend/pkg/redis"
	"github.com/eventra/backend/pkg/response"
	"github.com/eventra/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Cfg := storage.S3Config{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			ImagesBucket:    cfg.AWS.ImagesBucket,
		}
		s3Client, err = storage.NewS3(ctx, s3Cfg, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpireHours, cfg.JWT.RememberExpireHours)
	jobQueue := queue.NewQueue(rdb.Client, logger)
	catalogCache := catalog.NewCache(rdb.Client, logger)

	// Auth
	authRepo := auth.NewRepository(pool)
	authHandler := auth.NewHandler(authRepo, jwtService, logger)

	// Organizer profiles
	organizerRepo := organizers.NewRepository(pool)
	organizerHandler := organizers.NewHandler(organizerRepo)

	// Event submission (organizer-facing)
	eventRepo := events.NewRepository(pool)
	eventHandler := events.NewHandler(eventRepo, catalogCache, logger)

	// Public catalog
	catalogRepo := catalog.NewRepository(pool)
	catalogHandler := catalog.NewHandler(catalogRepo, catalogCache)

	// Admin review workflow
	reviewRepo := review.NewRepository(pool)
	reviewHandler := review.NewHandler(reviewRepo, authRepo, catalogCache, jobQueue, logger)

	// Review notification audit trail
	emailLogRepo := emaillogs.NewRepository(pool)
	emailLogHandler := emaillogs.NewHandler(emailLogRepo)

	// Image uploads
	uploadHandler := uploads.NewHandler(s3Client, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Auth (public, rate limited)
	authGroup := router.Group("/auth")
	authGroup.Use(middleware.RateLimit(rdb.Client, cfg.Server.AuthRatePerMinute))
	{
		authGroup.POST("/signin", authHandler.Signin)
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/organizer/signup", authHandler.OrganizerSignup)
		authGroup.POST("/doctor/signup", authHandler.DoctorSignup)
	}

	// Public catalog: approved + published events only. /events/mine below is
	// organizer-scoped; gin matches the static segment before the param.
	router.GET("/events", catalogHandler.List)
	router.GET("/events/:id", catalogHandler.GetByID)

	// Protected API (JWT required)
	api := router.Group("")
	api.Use(middleware.JWT(jwtService))
	{
		// Organizer event submission and management
		api.POST("/events", middleware.RequireRole(models.RoleOrganizer), eventHandler.Create)
		api.GET("/events/mine", middleware.RequireRole(models.RoleOrganizer), eventHandler.ListMine)
		api.PATCH("/events/:id", middleware.RequireRole(models.RoleOrganizer), eventHandler.Update)
		api.DELETE("/events/:id", middleware.RequireRole(models.RoleOrganizer), eventHandler.Delete)

		// Organizer profile
		api.GET("/organizers/me", middleware.RequireRole(models.RoleOrganizer), organizerHandler.GetMe)
		api.PATCH("/organizers/me", middleware.RequireRole(models.RoleOrganizer), organizerHandler.UpdateMe)

		// Image uploads (organizers attach these to submissions)
		api.POST("/upload/image", middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin), uploadHandler.UploadImage)

		// Admin review workflow
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/dashboard", reviewHandler.Dashboard)
			admin.GET("/events/pending", reviewHandler.ListPending)
			admin.GET("/events/:id", reviewHandler.GetDetail)
			admin.PUT("/events/:id/review", reviewHandler.Review)
			admin.GET("/events/:id/emails", emailLogHandler.ListByEvent)
			admin.PUT("/organizers/:id/verify", organizerHandler.Verify)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
