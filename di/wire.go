//go:build wireinject
// +build wireinject

package di

import (
	"floorplan/config"
	"floorplan/infras/graphql"
	"floorplan/infras/jwt"
	"floorplan/infras/kafka"
	"floorplan/infras/otel"
	"floorplan/infras/postgres"
	"floorplan/infras/redis"
	"floorplan/infras/s3"
	"floorplan/permissions"
	"floorplan/shared/cache"
	"floorplan/transport/http/middleware"
	"floorplan/transport/http/router"

	floorBackend "floorplan/internal/domains/floor/backend"
	floorRepository "floorplan/internal/domains/floor/repository"
	floorService "floorplan/internal/domains/floor/service"
	floorHandler "floorplan/internal/handlers/floor"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	graphql.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var floorDomain = wire.NewSet(
	floorBackend.New,
	floorRepository.New,
	floorService.ProvideSessions,
	floorService.NewCommitter,
	floorService.New,
)

var domains = wire.NewSet(
	floorDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	floorHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		newServer,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
