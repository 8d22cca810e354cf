package main

import (
	"fmt"
	"os"

	"github.com/nafisnihal/product-management-backend/internal/config"
	"github.com/nafisnihal/product-management-backend/internal/logger"
	"github.com/nafisnihal/product-management-backend/internal/server"
)

var version = "dev" // Will be set during build with -ldflags

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	// Create server
	srv, err := server.New(cfg, log, version)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	log.Info().
		Str("version", version).
		Str("environment", cfg.Environment()).
		Str("port", cfg.Server.Port).
		Msg("Starting product management API...")

	// Start HTTP server (this blocks)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
