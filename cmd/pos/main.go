package main

import (
	"context"
	"os"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitienda/pos-terminal/internal/auth"
	"github.com/mitienda/pos-terminal/internal/config"
	"github.com/mitienda/pos-terminal/internal/money"
	"github.com/mitienda/pos-terminal/internal/obs"
	"github.com/mitienda/pos-terminal/internal/shop"
	"github.com/mitienda/pos-terminal/internal/store"
	"github.com/mitienda/pos-terminal/internal/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if err := store.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("run migrations")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse database config")
	}
	if poolConfig.ConnConfig.RuntimeParams == nil {
		poolConfig.ConnConfig.RuntimeParams = map[string]string{}
	}
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "pos-terminal"

	ctx := context.Background()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(pingCtx, poolConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := pool.Ping(pingCtx); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	gateway := store.New(pool, logger, cfg.Currency)

	s := shop.New(gateway, logger, money.New(cfg.OpeningCash, cfg.Currency))
	if err := s.LoadInventory(ctx); err != nil {
		logger.Fatal().Err(err).Msg("load inventory")
	}

	terminal := &term.Terminal{
		In:        os.Stdin,
		Out:       os.Stdout,
		Shop:      s,
		Auth:      &auth.Service{Directory: gateway, Logger: logger},
		Validator: validator.New(),
		Logger:    logger,
		ExportDir: cfg.ExportDir,
	}

	if err := terminal.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("terminal session ended")
	}

	// inventory snapshot for the historical table before shutting down
	if err := s.ExportHistory(ctx); err != nil {
		logger.Error().Err(err).Msg("write inventory history")
	}
	logger.Info().Str("cash", s.Cash().String()).Int("sales", s.SaleCount()).Msg("terminal closed")
}
