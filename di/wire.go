//go:build wireinject
// +build wireinject

package di

import (
	"garage/config"
	"garage/infras/jwt"
	"garage/infras/kafka"
	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/infras/redis"
	"garage/infras/s3"
	"garage/permissions"
	"garage/shared/cache"
	"garage/transport/http"
	"garage/transport/http/middleware"
	"garage/transport/http/router"

	"github.com/google/wire"

	authService "garage/internal/domains/auth/service"
	bookingRepository "garage/internal/domains/booking/repository"
	bookingService "garage/internal/domains/booking/service"
	userRepository "garage/internal/domains/user/repository"
	userService "garage/internal/domains/user/service"
	vehicleRepository "garage/internal/domains/vehicle/repository"
	vehicleService "garage/internal/domains/vehicle/service"

	authHandler "garage/internal/handlers/auth"
	bookingHandler "garage/internal/handlers/booking"
	userHandler "garage/internal/handlers/user"
	vehicleHandler "garage/internal/handlers/vehicle"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	vehicleDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	vehicleHandler.New,
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
