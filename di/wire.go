//go:build wireinject
// +build wireinject

package di

import (
	"nyumba/config"
	"nyumba/infras/kafka"
	"nyumba/infras/otel"
	"nyumba/infras/postgres"
	"nyumba/infras/redis"
	"nyumba/infras/s3"
	bookingHandler "nyumba/internal/handlers/booking"
	catalogHandler "nyumba/internal/handlers/catalog"
	"nyumba/internal/notification"
	"nyumba/shared/cache"
	"nyumba/transport/http"
	"nyumba/transport/http/middleware"
	"nyumba/transport/http/router"

	bookingRepository "nyumba/internal/domains/booking/repository"
	bookingService "nyumba/internal/domains/booking/service"
	catalogRepository "nyumba/internal/domains/catalog/repository"
	catalogService "nyumba/internal/domains/catalog/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewAvailability,
	bookingService.New,
	notification.NewPublisher,
	wire.Bind(new(bookingService.Transactor), new(*postgres.Connection)),
	wire.Bind(new(catalogService.AvailabilityCounter), new(bookingService.Availability)),
)

var domains = wire.NewSet(
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeConsumer() *notification.Consumer {
	wire.Build(
		configurations,
		wire.NewSet(
			otel.New,
			kafka.New,
		),
		notification.NewMailer,
		notification.NewConsumer,
	)

	return &notification.Consumer{}
}
