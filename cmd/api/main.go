package main

import (
	"os"

	"github.com/finsaarthi/scholarhub/internal/pkg/logger" // Still needed for initial error logging
	"github.com/finsaarthi/scholarhub/internal/server"
)

// @title FinSaarthi API
// @version 1.0
// @description API for the FinSaarthi scholarship discovery and application portal

// @contact.name API Support
// @contact.email support@finsaarthi.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupStore,
	// BuildDependencies and SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
