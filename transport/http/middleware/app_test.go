package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/shared/cache"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
)

type rateLimitFixture struct {
	app   *App
	cache *cacheMocks.MockRedisCache
}

func newRateLimitFixture(t *testing.T, maxRequests, windowSecs int) rateLimitFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = windowSecs

	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	return rateLimitFixture{
		app:   ProvideApp(cfg, otelMocks.NewOtel(), redisCache),
		cache: redisCache,
	}
}

func serveRateLimited(app *App) *httptest.ResponseRecorder {
	handler := app.RateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	request.RemoteAddr = "10.0.0.7:51234"

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func TestRateLimit(t *testing.T) {
	t.Run("first request starts a window in the cache", func(t *testing.T) {
		fixture := newRateLimitFixture(t, 5, 60)

		fixture.cache.EXPECT().
			Get(gomock.Any(), "limiter:10.0.0.7", gomock.Any()).
			Return(cache.CacheNil)
		fixture.cache.EXPECT().
			Save(gomock.Any(), "limiter:10.0.0.7", 1, 60).
			Return(nil)

		recorder := serveRateLimited(fixture.app)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "5", recorder.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "4", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("request within the window increments the count", func(t *testing.T) {
		fixture := newRateLimitFixture(t, 5, 60)

		fixture.cache.EXPECT().
			Get(gomock.Any(), "limiter:10.0.0.7", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*int)) = 2

				return nil
			})
		fixture.cache.EXPECT().
			Save(gomock.Any(), "limiter:10.0.0.7", 3, 60).
			Return(nil)

		recorder := serveRateLimited(fixture.app)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "2", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("request over the limit is rejected", func(t *testing.T) {
		fixture := newRateLimitFixture(t, 5, 60)

		fixture.cache.EXPECT().
			Get(gomock.Any(), "limiter:10.0.0.7", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*int)) = 5

				return nil
			})

		recorder := serveRateLimited(fixture.app)

		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})

	t.Run("cache outage lets the request through", func(t *testing.T) {
		fixture := newRateLimitFixture(t, 5, 60)

		fixture.cache.EXPECT().
			Get(gomock.Any(), "limiter:10.0.0.7", gomock.Any()).
			Return(errors.New("connection refused"))

		recorder := serveRateLimited(fixture.app)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("disabled limiter never touches the cache", func(t *testing.T) {
		fixture := newRateLimitFixture(t, 5, 60)
		fixture.app.config.App.RateLimiter.Enable = false

		recorder := serveRateLimited(fixture.app)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
