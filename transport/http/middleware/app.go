package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
)

type App struct {
	config *config.Config
	otel   otel.Otel
	cache  cache.RedisCache
}

func ProvideApp(config *config.Config, otl otel.Otel, redisCache cache.RedisCache) *App {
	return &App{
		config: config,
		otel:   otl,
		cache:  redisCache,
	}
}

// Tracing opens a span for every request.
func (m *App) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, r.Method+" "+r.URL.Path)
		defer scope.End()

		scope.SetAttribute("http.method", r.Method)
		scope.SetAttribute("http.path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit applies a fixed window limit per client address, counted in the
// shared cache so every instance sees the same window. A cache outage lets
// requests through.
func (m *App) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxRequests := m.config.App.RateLimiter.MaxRequests
		windowSecs := m.config.App.RateLimiter.WindowSeconds

		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientAddress(r))

		var count int
		err := m.cache.Get(r.Context(), cacheKey, &count)

		switch {
		case err == nil:
			count++
		case errors.Is(err, cache.CacheNil):
			count = 1
		default:
			next.ServeHTTP(w, r)

			return
		}

		if count > maxRequests {
			response.WithError(w, &failure.Failure{
				Code:    http.StatusTooManyRequests,
				Message: constant.ResponseErrorRequestLimitExceeded,
			})

			return
		}

		if err := m.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxRequests))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxRequests-count)))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
