package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	otelMocks "hotelier/infras/otel/mocks"
	guestMocks "hotelier/internal/domains/guest/mocks"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/failure"
	"hotelier/shared/password"
)

type guestServiceFixture struct {
	service Guest
	repo    *guestMocks.MockGuest
	cache   *cacheMocks.MockRedisCache
}

func newGuestServiceFixture(t *testing.T) guestServiceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := guestMocks.NewMockGuest(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return guestServiceFixture{
		service: New(repo, redisCache, &config.Config{}, otelMocks.NewOtel()),
		repo:    repo,
		cache:   redisCache,
	}
}

func TestGetGuestByID(t *testing.T) {
	ctx := context.Background()

	t.Run("response carries the full name and no password", func(t *testing.T) {
		fixture := newGuestServiceFixture(t)

		guest := model.Guest{
			ID:         "G1",
			FirstName:  "Amina",
			MiddleName: "K",
			LastName:   "Yusuf",
			Password:   "a-bcrypt-hash",
		}

		fixture.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fixture.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
		fixture.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		response, err := fixture.service.GetByID(ctx, "G1")

		assert.NoError(t, err)
		assert.Equal(t, "Amina K Yusuf", response.FullName)
	})

	t.Run("unknown guest reports not found", func(t *testing.T) {
		fixture := newGuestServiceFixture(t)

		fixture.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fixture.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := fixture.service.GetByID(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUpdateGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("password updates are stored hashed", func(t *testing.T) {
		fixture := newGuestServiceFixture(t)

		fixture.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		fixture.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				hashed, ok := fields[model.FieldPassword].(string)
				assert.True(t, ok)
				assert.NoError(t, password.Verify("new-password-123", hashed))

				return nil
			})

		err := fixture.service.Update(ctx, dto.UpdateGuestRequest{Password: "new-password-123"}, "G1", "staff-1")

		assert.NoError(t, err)
	})

	t.Run("unknown guest reports not found", func(t *testing.T) {
		fixture := newGuestServiceFixture(t)

		fixture.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := fixture.service.Update(ctx, dto.UpdateGuestRequest{FirstName: "New"}, "missing", "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
