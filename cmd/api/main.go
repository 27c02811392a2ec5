package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/formadesk/formadesk/internal/pkg/logger"
	"github.com/formadesk/formadesk/internal/server"
)

// @title Formadesk API
// @version 1.0
// @description Backend API for the Formadesk corporate training portal

// @contact.name API Support
// @contact.email support@formadesk.app

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
	// Environment overrides may come from a local .env file in development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not load .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
