// Package main is the entry point for the pack-planner application.
//
// @title           Pack Planner API
// @version         1.0.0
// @description     Interactive packing sessions for outgoing shipments.
//
//	A session edits the packing lines of one shipment, validates them against the
//	ordered quantities and saves the result back to the shipments API.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pack-planner
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if API_KEYS is set.
//
// @tag.name        Packing
// @tag.description Packing session operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"errors"
	"io/fs"
	"time"

	_ "github.com/guttosm/pack-planner/docs" // swagger docs

	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close application")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
