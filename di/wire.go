//go:build wireinject
// +build wireinject

package di

import (
	"campusbook/config"
	"campusbook/infras/forecastapi"
	"campusbook/infras/jwt"
	"campusbook/infras/kafka"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/infras/redis"
	"campusbook/infras/s3"
	"campusbook/permissions"
	"campusbook/shared/cache"
	"campusbook/transport/http"
	"campusbook/transport/http/middleware"
	"campusbook/transport/http/router"

	authService "campusbook/internal/domains/auth/service"
	bookingRepository "campusbook/internal/domains/booking/repository"
	bookingService "campusbook/internal/domains/booking/service"
	forecastService "campusbook/internal/domains/forecast/service"
	resourceRepository "campusbook/internal/domains/resource/repository"
	resourceService "campusbook/internal/domains/resource/service"
	userRepository "campusbook/internal/domains/user/repository"
	userService "campusbook/internal/domains/user/service"

	authHandler "campusbook/internal/handlers/auth"
	bookingHandler "campusbook/internal/handlers/booking"
	forecastHandler "campusbook/internal/handlers/forecast"
	resourceHandler "campusbook/internal/handlers/resource"
	userHandler "campusbook/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	forecastapi.New,
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
	userService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var forecastDomain = wire.NewSet(
	forecastService.New,
)

var domains = wire.NewSet(
	authDomain,
	resourceDomain,
	bookingDomain,
	forecastDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	forecastHandler.New,
	resourceHandler.New,
	userHandler.New,
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
