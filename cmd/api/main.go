package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campusdesk/facultyhub/internal/pkg/logger"
	"github.com/campusdesk/facultyhub/internal/server"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg(".env file loaded")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
