package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expensetrack/internal/config"
	"expensetrack/internal/handlers"
	"expensetrack/internal/logger"
	"expensetrack/internal/repository"
	repdb "expensetrack/internal/repository/db"
	"expensetrack/internal/server"
	"expensetrack/internal/service"

	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The log level comes from config, so boot failures fall back to the
		// default level.
		logger.Get(logger.InfoLevel).Fatalw("error loading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	db, err := repdb.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalw("failed to connect database", "err", err)
	}
	defer closeDB(db, log)

	// wire dependencies
	repos := repository.NewRepository(db)
	tokens := service.NewTokenManager(cfg.SigningSecret)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, cfg, log)

	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("server listening", "port", cfg.Port)

	waitForShutdown(srv, log)
}

func closeDB(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if cerr := sqlDB.Close(); cerr != nil {
		log.Errorw("failed to close database", "err", cerr)
	}
}

// waitForShutdown blocks until a termination signal arrives, then drains
// in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
