// Package main is the entry point for the isoref reference API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"isoref/internal/core/isocode"
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/reference"
	"isoref/internal/domain/relations"
	v1 "isoref/internal/infrastructure/http/v1"
	"isoref/internal/infrastructure/http/v1/handlers"
	"isoref/internal/infrastructure/metrics"
	"isoref/internal/infrastructure/snapshot"
	"isoref/pkg/logger"
)

func main() {
	started := time.Now()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if getEnv("APP_ENV", "development") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Infow("starting isoref server", "dataset_version", relations.DatasetVersion)

	// --- Metrics ---
	var m *metrics.Metrics
	if getEnv("METRICS_ENABLED", "true") == "true" {
		m = metrics.New()
		m.SetCatalogueSize(string(isocode.DomainCountry), country.Count)
		m.SetCatalogueSize(string(isocode.DomainCurrency), currency.Count)
		m.SetCatalogueSize(string(isocode.DomainLanguage), language.Count)
	}

	// --- Dataset snapshot ---
	codec, err := snapshot.NewCodec()
	if err != nil {
		log.Fatalw("failed to create snapshot codec", "error", err)
	}
	defer codec.Close()

	snap := snapshot.Build(started)
	if err := snap.Verify(); err != nil {
		log.Fatalw("catalogue is inconsistent", "error", err)
	}
	dataset, err := handlers.NewDatasetHandler(snap, codec)
	if err != nil {
		log.Fatalw("failed to encode dataset", "error", err)
	}

	// --- Metadata Registry ---
	metadataRegistry := setupMetadataRegistry()
	log.Info("metadata registry initialized")

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:           log,
		Service:          reference.NewService(m), // Metrics methods are nil-safe
		Metrics:          m,
		MetadataRegistry: metadataRegistry,
		Dataset:          dataset,
		Started:          started,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "metrics", m != nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
