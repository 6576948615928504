package main

import (
	"alcyxob/fitness-planner/internal/api"
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/database"
	"alcyxob/fitness-planner/internal/generator"
	"alcyxob/fitness-planner/internal/logging"
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/seed"
	"alcyxob/fitness-planner/internal/service"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	hostname, _ := os.Hostname()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.Log.File,
		LogToStdout:      cfg.Log.ToStdout,
		LogLevel:         cfg.Log.Level,
		LogFormatJSON:    cfg.Log.JSON,
		Environment:      cfg.Log.Environment,
		SentryDSN:        cfg.Log.SentryDSN,
		SentryServerName: hostname,
	})
	defer sentry.Flush(2 * time.Second)

	log.Infof("starting fitness planner server [driver: %s, base path: %s]", cfg.Database.Driver, cfg.Server.BasePath)

	if err := run(cfg); err != nil {
		log.Errorf("server stopped with error: %s", err)
		os.Exit(1)
	}
	log.Println("server exiting")
}

func run(cfg config.Config) (err error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Database ---
	backend, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		log.Println("closing database...")
		err = multierr.Append(err, backend.Close())
	}()

	seedResult, err := seed.NewSeeder(backend.Repos.Library, backend.Repos.Templates).Run(ctx)
	if err != nil {
		return err
	}
	if len(seedResult.SkippedExercises) > 0 {
		log.Warnf("template exercises missing from the library: %v", seedResult.SkippedExercises)
	}
	if len(seedResult.SkippedTemplates) > 0 {
		log.Warnf("templates not created, no exercise found: %v", seedResult.SkippedTemplates)
	}

	// --- Metrics ---
	var collectors []prometheus.Collector
	if backend.Collector != nil {
		collectors = append(collectors, backend.Collector)
	}
	promRegistry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager("fitness", "server", promRegistry)

	// --- Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return err
		}
	} else {
		log.Warnln("s3 bucket not configured, session log exports are disabled")
	}

	// --- Services ---
	repos := backend.Repos
	planGenerator := generator.New(repos.Library, nil)
	services := api.Services{
		Users:    service.NewUserService(repos.Users),
		Plans:    service.NewPlanService(repos.Users, repos.Plans, repos.Schedules, planGenerator, metricsManager),
		Schedule: service.NewScheduleService(repos.Users, repos.Library, repos.Templates, repos.Schedules),
		Library:  service.NewLibraryService(repos.Library, repos.Templates),
		Logs:     service.NewSessionLogService(repos.Users, repos.Library, repos.Logs, metricsManager),
		Exports:  service.NewExportService(repos.Users, repos.Logs, fileStorage, cfg.Export.URLExpiry, metricsManager),
	}

	// --- HTTP ---
	if cfg.Log.Level != "debug" && cfg.Log.Level != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.RouterParams{
		BasePath:       cfg.Server.BasePath,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Services:       services,
		MetricsManager: metricsManager,
		Gatherer:       promRegistry,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down server...")
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	return server.Shutdown(ctxShutdown)
}
