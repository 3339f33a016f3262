package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cooler-fleet-portal/internal/config"
	"cooler-fleet-portal/internal/database"
	"cooler-fleet-portal/internal/importer"
	"cooler-fleet-portal/internal/importjob"
	"cooler-fleet-portal/internal/logger"
	"cooler-fleet-portal/internal/models"
	"cooler-fleet-portal/internal/routes"
	"cooler-fleet-portal/internal/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := models.Migrate(db.DB); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Import.DropDir, 0o755); err != nil {
		logger.Fatal("Failed to create drop directory", zap.Error(err))
	}

	imp := importer.NewImporter(db.DB, importer.Options{
		BatchSize:   cfg.Import.BatchSize,
		ForceUpsert: cfg.Import.MasterUpsert,
	})
	runner := importjob.NewRunner(imp, cfg.Import.DropDir)
	refresher := views.NewRefresher(db.DB)
	manager := importjob.NewManager(runner, refresher)
	defer manager.Close()

	schedules := importjob.NewScheduleStore(cfg.Import.ScheduleFile)
	daemonCtx, daemonCancel := context.WithCancel(context.Background())
	defer daemonCancel()
	go importjob.NewDaemon(schedules, manager).Run(daemonCtx)

	if cfg.Import.WatchDropDir {
		watcher := importjob.NewWatcher(cfg.Import.DropDir, manager)
		go func() {
			if err := watcher.Run(daemonCtx); err != nil {
				logger.Error("Drop directory watcher stopped", zap.Error(err))
			}
		}()
	}

	router := routes.SetupRoutes(cfg, db, manager, imp, schedules)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:        addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No write timeout: /api/v1/import/wait blocks up to its own cap.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
