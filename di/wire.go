//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	guestRepository "hotelier/internal/domains/guest/repository"
	guestService "hotelier/internal/domains/guest/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	staffRepository "hotelier/internal/domains/staff/repository"
	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	guestHandler "hotelier/internal/handlers/guest"
	roomHandler "hotelier/internal/handlers/room"
	"hotelier/shared/cache"
	transportHttp "hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var persistences = wire.NewSet(
	postgres.New,
	redis.New,
	cache.NewRedisCache,
)

var infrastructures = wire.NewSet(
	otel.New,
	jwt.New,
	kafka.New,
)

var domains = wire.NewSet(
	guestRepository.New,
	guestService.New,
	roomRepository.New,
	roomService.New,
	bookingRepository.New,
	bookingService.New,
	staffRepository.New,
	authService.New,
)

var handlers = wire.NewSet(
	authHandler.ProvideHandler,
	guestHandler.ProvideHandler,
	roomHandler.ProvideHandler,
	bookingHandler.ProvideHandler,
	wire.Struct(new(router.DomainHandlers), "*"),
)

var transports = wire.NewSet(
	middleware.ProvideAuth,
	middleware.ProvideApp,
	router.ProvideRouter,
	transportHttp.ProvideHTTP,
)

// InitializeService assembles the HTTP server with every dependency wired.
func InitializeService() *transportHttp.HTTP {
	wire.Build(
		configurations,
		persistences,
		infrastructures,
		domains,
		handlers,
		transports,
	)

	return &transportHttp.HTTP{}
}
