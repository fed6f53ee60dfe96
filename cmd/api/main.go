package main

import (
	"os"

	"github.com/ecetin/gradpath/internal/pkg/logger"
	"github.com/ecetin/gradpath/internal/server"
)

// @title GradPath API
// @version 1.0
// @description Degree-audit service: course catalogs, program requirement models, student plans and progress evaluation

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
