// Package main publishes the reference dataset into PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"isoref/internal/infrastructure/snapshot"
	"isoref/internal/infrastructure/storage/postgres"
	"isoref/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), getEnvDuration("SEED_TIMEOUT", 2*time.Minute))
	defer cancel()

	// Load the dataset: a snapshot file when given, otherwise the compiled-in catalogue
	snap, err := loadSnapshot(getEnv("SNAPSHOT_PATH", ""))
	if err != nil {
		log.Fatalw("failed to load snapshot", "error", err)
	}
	log.Infow("dataset loaded",
		"version", snap.Version,
		"countries", snap.Counts.Countries,
		"currencies", snap.Counts.Currencies,
		"languages", snap.Counts.Languages,
	)

	// Connect to database
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	repo := postgres.NewRefDataRepo(postgres.NewTxManager(pool), getEnv("SEED_SCHEMA", postgres.DefaultSchema))

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	if err := repo.Publish(ctx, snap); err != nil {
		log.Fatalw("failed to publish dataset", "error", err)
	}
	if err := repo.Verify(ctx, snap); err != nil {
		log.Fatalw("stored dataset does not match", "error", err)
	}

	pool.LogStats(ctx)
	log.Infow("seeding completed successfully", "schema", repo.Tables().Schema, "version", snap.Version)
}

func loadSnapshot(path string) (*snapshot.Snapshot, error) {
	if path == "" {
		return snapshot.Build(time.Now().UTC()), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	codec, err := snapshot.NewCodec()
	if err != nil {
		return nil, err
	}
	defer codec.Close()

	return codec.Decode(b)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
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
