package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Top-Technologies/downtime/internal/api/routes"
	"github.com/Top-Technologies/downtime/internal/cache"
	"github.com/Top-Technologies/downtime/internal/config"
	"github.com/Top-Technologies/downtime/internal/database"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/Top-Technologies/downtime/docs" // This is needed for swag
)

//	@title			Downtime Management API
//	@version		1.0
//	@description	Records production downtime against a reason catalog and routes each record through submit, edit and approval.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		SequencePrefix:  cfg.DowntimeSequencePrefix,
		SequencePadding: cfg.DowntimeSequencePadding,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	ctx := context.Background()
	backends := routes.Backends{
		Redis:   connectRedis(ctx, cfg),
		Storage: connectMinIO(ctx, cfg),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, backends)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// connectRedis returns nil when the reason cache is disabled or unreachable
func connectRedis(ctx context.Context, cfg *config.Config) *cache.ReasonCache {
	if !cfg.RedisEnabled() {
		logrus.Info("REDIS_ADDR not set, reason cache disabled")
		return nil
	}

	client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	reasonCache := cache.NewReasonCache(client, time.Duration(cfg.ReasonCacheTTLSec)*time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := reasonCache.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("Redis unavailable, reason cache disabled")
		_ = client.Close()
		return nil
	}
	return reasonCache
}

// connectMinIO returns nil when attachment storage is disabled or unreachable
func connectMinIO(ctx context.Context, cfg *config.Config) *storage.MinIOClient {
	if !cfg.MinIOEnabled() {
		logrus.Info("MINIO_ENDPOINT not set, attachments disabled")
		return nil
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := storage.NewMinIOClient(initCtx, cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL)
	if err != nil {
		logrus.WithError(err).Warn("MinIO unavailable, attachments disabled")
		return nil
	}
	return client
}
