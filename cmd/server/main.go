package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/repository/mongo"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// @title Workout Tracker API
// @version 1.0
// @description API for workout programs, cycles, schedules, progress photos and exports.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	gin.SetMode(cfg.Server.Mode)
	log.Info("starting workout tracker server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.WithField("database", cfg.Database.Name).Info("database connection established")

	// --- Ensure Indexes ---
	indexCtx, cancelIndexes := context.WithTimeout(ctx, time.Minute)
	for collection, err := range mongo.EnsureIndexes(indexCtx, appDB) {
		log.WithError(err).WithField("collection", collection).Error("failed to ensure indexes")
	}
	cancelIndexes()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		log.Fatalf("failed to initialize S3 storage: %v", err)
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("workout_tracker", "server", registry)

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	photoRepo := mongo.NewMongoPhotoRepository(appDB)

	// --- Initialize Services ---
	scheduleCache := cache.NewFreeCache(cfg.Schedule.CacheSizeMB, cfg.Schedule.CacheTTL)
	programService := service.NewProgramService(programRepo, scheduleCache, metricsManager, cfg.Schedule.MaxRangeDays, time.Now)
	services := api.Services{
		Auth:     service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Auth.AdminEmails),
		Exercise: service.NewExerciseService(exerciseRepo),
		Program:  programService,
		Photo: service.NewPhotoService(photoRepo, fileStorage, metricsManager, service.PhotoOptions{
			MaxDimension:   cfg.Photos.MaxDimension,
			JPEGQuality:    cfg.Photos.JPEGQuality,
			MaxUploadBytes: cfg.Photos.MaxUploadBytes,
			URLExpiry:      cfg.S3.PresignExpiry,
		}, time.Now),
		Export: service.NewExportService(programRepo, fileStorage, metricsManager, cfg.S3.PresignExpiry, time.Now),
	}

	// --- Seed Built-in Templates ---
	templates, err := catalog.Load(cfg.Catalog.Path, time.Now())
	if err != nil {
		log.Fatalf("invalid template catalog: %v", err)
	}
	seeded, err := programService.SeedTemplates(ctx, templates)
	if err != nil {
		log.WithError(err).Error("failed to seed built-in templates")
	}
	log.WithFields(log.Fields{"available": len(templates), "seeded": seeded}).Info("template catalog loaded")

	// --- Setup Routes ---
	router := gin.New()
	api.SetupRoutes(router, services, api.RouterOptions{
		JWTSecret:      cfg.JWT.Secret,
		MaxUploadBytes: cfg.Photos.MaxUploadBytes,
		Metrics:        metricsManager,
		Gatherer:       registry,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	select {
	case err := <-serverErr:
		log.Errorf("server error: %v", err)
	case <-ctx.Done():
	}
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	log.Info("server exiting")
}
