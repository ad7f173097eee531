package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/infrastructure/api"
	"github.com/damon-houk/currency-converter/internal/infrastructure/config"
	"github.com/damon-houk/currency-converter/internal/infrastructure/db"
	"github.com/damon-houk/currency-converter/internal/infrastructure/handler"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewZapLogger(os.Stderr, logger.ErrorLevel).Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	zl := logger.NewZapLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	defer zl.Sync()
	logger.SetDefaultLogger(zl)
	log := zl.WithField("component", "server")

	log.Info("Starting currency converter", map[string]interface{}{
		"addr":         cfg.Addr(),
		"api_base_url": cfg.APIBaseURL,
		"log_level":    cfg.LogLevel,
	})

	// Favorites live for the lifetime of the process only
	badgerDB, err := db.OpenInMemory()
	if err != nil {
		log.Fatal("Failed to open database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := badgerDB.Close(); err != nil {
			log.Error("Error closing BadgerDB", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	m := metrics.NewMetrics()

	client := api.NewFrankfurterClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout},
		zl.WithField("component", "rate_client"))
	rates := api.NewInstrumentedRateProvider(client, zl, m)

	router := handler.NewRouter(handler.Dependencies{
		Conversion: service.NewConversionService(rates, zl),
		Trend:      service.NewTrendService(rates, zl).WithDefaultDays(cfg.DefaultTrendDays),
		Favorites:  service.NewFavoritesService(db.NewBadgerFavoritesRepository(badgerDB), zl),
		Export:     service.NewExportService(zl),
		Session:    session.New(cfg.DarkMode),
		Metrics:    m,
		Logger:     zl,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"addr": cfg.Addr(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
