package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	otelMocks "hotelier/infras/otel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

type roomServiceFixture struct {
	service Room
	repo    *roomMocks.MockRoom
	cache   *cacheMocks.MockRedisCache
}

func newRoomServiceFixture(t *testing.T) roomServiceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := roomMocks.NewMockRoom(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return roomServiceFixture{
		service: New(repo, redisCache, &config.Config{}, otelMocks.NewOtel()),
		repo:    repo,
		cache:   redisCache,
	}
}

func TestFindAvailableRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rooms free for the stay", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

		fixture.repo.EXPECT().
			FindAvailable(gomock.Any(), "Deluxe", checkIn, checkOut).
			Return([]model.Room{{ID: "R101", RoomType: "Deluxe", Availability: true}}, nil)

		response, err := fixture.service.FindAvailable(ctx, dto.AvailabilityRequest{
			RoomType: "Deluxe",
			CheckIn:  "2026-09-10",
			CheckOut: "2026-09-12",
		})

		assert.NoError(t, err)
		assert.Len(t, response.Rooms, 1)
		assert.Equal(t, "R101", response.Rooms[0].ID)
	})

	t.Run("empty result when every room is taken", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		fixture.repo.EXPECT().
			FindAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{}, nil)

		response, err := fixture.service.FindAvailable(ctx, dto.AvailabilityRequest{
			RoomType: "Deluxe",
			CheckIn:  "2026-09-10",
			CheckOut: "2026-09-12",
		})

		assert.NoError(t, err)
		assert.Empty(t, response.Rooms)
	})

	t.Run("rejects check-out equal to check-in", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		_, err := fixture.service.FindAvailable(ctx, dto.AvailabilityRequest{
			RoomType: "Deluxe",
			CheckIn:  "2026-09-10",
			CheckOut: "2026-09-10",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		_, err := fixture.service.FindAvailable(ctx, dto.AvailabilityRequest{
			RoomType: "Deluxe",
			CheckIn:  "2026-09-12",
			CheckOut: "2026-09-10",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		_, err := fixture.service.FindAvailable(ctx, dto.AvailabilityRequest{
			RoomType: "Deluxe",
			CheckIn:  "not-a-date",
			CheckOut: "2026-09-10",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("creates room available by default", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		fixture.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "R101", room.ID)
				assert.True(t, room.Availability)
				assert.Equal(t, "staff-1", room.CreatedBy)

				return nil
			})

		response, err := fixture.service.Create(ctx, dto.CreateRoomRequest{
			ID:        "R101",
			RoomType:  "Deluxe",
			RoomPrice: 150,
		}, "staff-1")

		assert.NoError(t, err)
		assert.Equal(t, "R101", response.ID)
	})

	t.Run("duplicate id reports conflict", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		fixture.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

		_, err := fixture.service.Create(ctx, dto.CreateRoomRequest{
			ID:       "R101",
			RoomType: "Deluxe",
		}, "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestDeleteRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("room with bookings cannot be deleted", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		fixture.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		fixture.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})

		err := fixture.service.Delete(ctx, "R101")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown room reports not found", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		fixture.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := fixture.service.Delete(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("lists distinct types from a cold cache", func(t *testing.T) {
		fixture := newRoomServiceFixture(t)

		fixture.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fixture.repo.EXPECT().RoomTypes(gomock.Any()).Return([]string{"Deluxe", "Standard"}, nil)
		fixture.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		response, err := fixture.service.RoomTypes(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Deluxe", "Standard"}, response.RoomTypes)
	})
}
