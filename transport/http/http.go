package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/postgres"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
	"hotelier/transport/http/router"
)

// ServerState is the state of the server, used for health checks.
type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	DB     *postgres.Connection
	Router router.Router
	State  ServerState

	app *middleware.App
	mux *chi.Mux
}

func ProvideHTTP(config *config.Config, db *postgres.Connection, rtr router.Router, app *middleware.App) *HTTP {
	return &HTTP{
		Config: config,
		DB:     db,
		Router: rtr,
		app:    app,
	}
}

// SetupAndServe sets up the server and starts it.
func (h *HTTP) SetupAndServe() {
	h.mux = chi.NewRouter()
	h.setupMiddleware()
	h.setupHealthCheck()
	h.Router.SetupRoutes(h.mux)

	h.logRegisteredRoutes()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go h.handleGracefulShutdown(server)

	h.State = ServerStateReady

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}

// ServeHTTP serves a single request, setting up the router on first use.
// Used by serverless platforms that hand requests straight to a handler.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.mux = chi.NewRouter()
		h.setupMiddleware()
		h.setupHealthCheck()
		h.Router.SetupRoutes(h.mux)
		h.State = ServerStateReady
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setupMiddleware() {
	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.app.Tracing)
	h.mux.Use(h.app.RateLimit)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}
}

func (h *HTTP) setupHealthCheck() {
	h.mux.Get("/health", h.HealthCheck)
}

// HealthCheck performs a health check on the server. Returns 503 while the
// server is shutting down or when the database does not respond.
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithError(w, &failure.Failure{
			Code:    http.StatusServiceUnavailable,
			Message: constant.ResponseErrorPrepareShutdown,
		})

		return
	}

	if err := h.DB.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("database ping failed")
		response.WithError(w, &failure.Failure{
			Code:    http.StatusServiceUnavailable,
			Message: constant.ResponseErrorUnhealthy,
		})

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) logRegisteredRoutes() {
	walkFunc := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Debug().Str("method", method).Str("route", route).Msg("route registered")

		return nil
	}

	if err := chi.Walk(h.mux, walkFunc); err != nil {
		log.Error().Err(err).Msg("failed walking routes")
	}
}

// handleGracefulShutdown waits for a termination signal, stops accepting new
// requests during the grace period, then drains in-flight requests during the
// cleanup period.
func (h *HTTP) handleGracefulShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	h.State = ServerStateInGracePeriod

	log.Info().Msg("Entering grace period before shutting down")
	time.Sleep(time.Duration(h.Config.Server.Shutdown.GracePeriodSeconds) * time.Second)

	h.State = ServerStateInCleanupPeriod

	log.Info().Msg("Entering cleanup period, draining in-flight requests")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.Config.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server cleanly")
	}

	log.Info().Msg("Server shut down")
}
