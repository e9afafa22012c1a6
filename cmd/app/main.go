package main

import (
	"context"
	"time"

	"floorplan/config"
	"floorplan/di"
	"floorplan/helper"
	"floorplan/shared/logger"
	"floorplan/shared/timezone"

	"github.com/rs/zerolog/log"
)

const sweepInterval = time.Minute

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Str("timezone", cfg.App.Timezone).Msg("Falling back to UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweep(ctx, app)

	app.Server.Serve()
}

// sweep closes idle editor sessions until ctx is cancelled.
func sweep(ctx context.Context, app *di.App) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.Floor.SweepSessions(ctx)
		}
	}
}
