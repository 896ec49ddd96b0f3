// Package main writes the reference dataset snapshot to a file or stdout.
package main

import (
	"fmt"
	"os"
	"time"

	"isoref/internal/infrastructure/snapshot"
	"isoref/pkg/logger"
)

func main() {
	// Logs go to stderr so the snapshot can be piped from stdout.
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	comp, err := snapshot.ParseCompression(getEnv("SNAPSHOT_COMPRESSION", "none"))
	if err != nil {
		log.Fatalw("invalid SNAPSHOT_COMPRESSION", "error", err)
	}

	snap := snapshot.Build(time.Now().UTC())
	if err := snap.Verify(); err != nil {
		log.Fatalw("catalogue is inconsistent", "error", err)
	}

	codec, err := snapshot.NewCodec()
	if err != nil {
		log.Fatalw("failed to create codec", "error", err)
	}
	defer codec.Close()

	b, err := codec.Encode(snap, comp)
	if err != nil {
		log.Fatalw("failed to encode snapshot", "error", err)
	}

	path := getEnv("SNAPSHOT_PATH", "")
	if path == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			log.Fatalw("failed to write snapshot", "error", err)
		}
	} else if err := os.WriteFile(path, b, 0o644); err != nil {
		log.Fatalw("failed to write snapshot", "path", path, "error", err)
	}

	log.Infow("snapshot written",
		"version", snap.Version,
		"compression", comp,
		"bytes", len(b),
		"path", path,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
