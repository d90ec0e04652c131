package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/english-school-service/internal/cache"
	"github.com/SAP-F-2025/english-school-service/internal/config"
	"github.com/SAP-F-2025/english-school-service/internal/database"
	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/handlers"
	"github.com/SAP-F-2025/english-school-service/internal/repositories/gormrepo"
	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
	"github.com/SAP-F-2025/english-school-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize database
	db, err := database.Open(ctx, cfg.Database, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Initialize repositories
	repoManager := gormrepo.NewRepositoryManager(db)
	if err := repoManager.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.Cache.Backend == "redis" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Failed to initialize Redis", "error", err)
		}
	}
	store, err := cache.NewStore(cfg.Cache.Backend, cfg.Cache.SizeLimit, cache.NewRedisStore(redisClient, "school"))
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	listCache := services.NewListCache(store, cache.PolicyFromDuration(cfg.Cache.Duration), cfg.Cache.InvalidateOnUpdate, slogLogger)

	// Initialize event publisher
	publisher, err := newPublisher(ctx, cfg.Events, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	hasher := services.NewBcryptHasher(0)
	if cfg.SeedData {
		if err := database.Seed(ctx, repoManager.UnitOfWork(), hasher, slogLogger); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize services
	serviceManager := services.NewServiceManager(services.ServiceManagerConfig{
		Repositories: repoManager,
		Cache:        listCache,
		Validator:    validator.New(),
		Publisher:    publisher,
		Hasher:       hasher,
		Logger:       slogLogger,
	})
	if err := serviceManager.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlers.NewHandlerManager(serviceManager, logger).SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	stop()

	// Closes the publisher and the database
	if err := serviceManager.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}

// newPublisher builds the configured event backend. The in-process backend
// also starts the audit subscriber.
func newPublisher(ctx context.Context, cfg config.EventsConfig, logger *slog.Logger) (events.EventPublisher, error) {
	switch cfg.Backend {
	case "kafka":
		return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic, logger)
	case "gochannel":
		publisher, channel := events.NewGoChannelPublisher(cfg.Topic, logger)
		audit := events.NewAuditLogger(channel, cfg.Topic, logger)
		go func() {
			if err := audit.Run(ctx, nil); err != nil {
				logger.Error("Audit subscriber stopped", "error", err)
			}
		}()
		return publisher, nil
	default:
		return events.NoopPublisher{}, nil
	}
}
