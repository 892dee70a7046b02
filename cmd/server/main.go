package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/config"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/routes"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Inkspira backend")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()
	defer database.Close()

	logger.Info().Msg("Running database migrations")
	tableModels := []interface{}{
		&models.User{},
		&models.Artwork{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Report{},
		&models.Notification{},
	}
	for _, m := range tableModels {
		if err := database.DB.AutoMigrate(m); err != nil {
			logger.Fatal().Err(err).Msgf("Failed to migrate table for %T", m)
		}
	}
	logger.Info().Msg("Database migrations complete")

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterArtworkRoutes(api)
		routes.RegisterCommentRoutes(api)
		routes.RegisterUserRoutes(api)
		routes.RegisterReportRoutes(api)
		routes.RegisterNotificationRoutes(api)
		routes.RegisterAdminRoutes(api)
	}

	// Uploaded images when local disk storage is in use.
	r.Static("/uploads", config.AppConfig.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
