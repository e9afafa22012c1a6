package di

import (
	"context"
	"fmt"

	"floorplan/config"
	"floorplan/infras/kafka"
	"floorplan/infras/otel"
	"floorplan/infras/postgres"
	floorService "floorplan/internal/domains/floor/service"
	"floorplan/transport/http"
	"floorplan/transport/http/middleware"
	"floorplan/transport/http/router"

	goRedis "github.com/redis/go-redis/v9"
)

// App is the assembled service: the HTTP server and the floor editor it serves.
type App struct {
	Server *http.HTTP
	Floor  floorService.Floor
}

func newServer(
	cfg *config.Config,
	routes router.Router,
	app middleware.AppMiddleware,
	auth middleware.AuthRole,
	otl otel.Otel,
	publisher kafka.Publisher,
	db *postgres.Connection,
	redis *goRedis.Client,
) *http.HTTP {
	server := http.New(cfg, routes, app, auth)

	server.OnShutdown(
		func(_ context.Context) error {
			return publisher.Close()
		},
		otl.Shutdown,
		func(_ context.Context) error {
			if err := redis.Close(); err != nil {
				return fmt.Errorf("failed to close redis: %w", err)
			}

			return nil
		},
		func(_ context.Context) error {
			if db.Read != db.Write {
				if err := db.Read.Close(); err != nil {
					return fmt.Errorf("failed to close read database: %w", err)
				}
			}

			if err := db.Write.Close(); err != nil {
				return fmt.Errorf("failed to close write database: %w", err)
			}

			return nil
		},
	)

	return server
}
