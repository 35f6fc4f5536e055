package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"mavazimarket/internal/config"
	"mavazimarket/internal/db"
	"mavazimarket/internal/seed"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "seed").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("seed apply")
	}

	logger.Info().Msg("seed applied")
}
