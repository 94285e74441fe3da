package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	otelMocks "hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	guestMocks "hotelier/internal/domains/guest/mocks"
	guestModel "hotelier/internal/domains/guest/model"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/password"
)

type bookingServiceFixture struct {
	service     Booking
	bookingRepo *bookingMocks.MockBooking
	guestRepo   *guestMocks.MockGuest
	roomRepo    *roomMocks.MockRoom
	kafka       *kafkaMocks.MockClient
	cache       *cacheMocks.MockRedisCache
}

func newBookingServiceFixture(t *testing.T) bookingServiceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	guestRepo := guestMocks.NewMockGuest(ctrl)
	roomRepo := roomMocks.NewMockRoom(ctrl)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	// Event publishing and cache invalidation run on their own goroutines.
	kafkaClient.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return bookingServiceFixture{
		service:     New(bookingRepo, guestRepo, roomRepo, kafkaClient, redisCache, &config.Config{}, otelMocks.NewOtel()),
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		roomRepo:    roomRepo,
		kafka:       kafkaClient,
		cache:       redisCache,
	}
}

func availableRoom() roomModel.Room {
	return roomModel.Room{ID: "R101", RoomType: "Deluxe", RoomPrice: 150, Availability: true}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	baseRequest := func() dto.CreateReservationRequest {
		return dto.CreateReservationRequest{
			RoomID: "R101",
			Guest: dto.GuestDraft{
				FirstName:     "Amina",
				LastName:      "Yusuf",
				ContactNumber: "0812000111",
			},
			CheckIn:  "2026-09-10",
			CheckOut: "2026-09-12",
		}
	}

	t.Run("creates booking and guest together", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		fixture.bookingRepo.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest *guestModel.Guest, booking model.Booking) error {
				assert.NotNil(t, guest)
				assert.NotEmpty(t, guest.ID)
				assert.Equal(t, "Amina", guest.FirstName)
				assert.Equal(t, guest.ID, booking.GuestID)
				assert.NotEmpty(t, booking.ID)
				assert.Equal(t, "R101", booking.RoomID)
				assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
				assert.Equal(t, constant.BookingStatusConfirmed, booking.BookingStatus)
				assert.True(t, booking.OutDate.After(booking.InDate))

				return nil
			})

		response, err := fixture.service.CreateReservation(ctx, baseRequest(), "staff-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, constant.PaymentStatusPending, response.PaymentStatus)
		assert.Equal(t, constant.BookingStatusConfirmed, response.BookingStatus)
	})

	t.Run("new bookings always start pending", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		fixture.bookingRepo.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *guestModel.Guest, booking model.Booking) error {
				assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
				assert.Equal(t, constant.BookingStatusConfirmed, booking.BookingStatus)

				return nil
			})

		_, err := fixture.service.CreateReservation(ctx, baseRequest(), "staff-1")

		assert.NoError(t, err)
	})

	t.Run("existing guest record wins over the draft", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		request := baseRequest()
		request.Guest.GuestID = "G1"
		request.Guest.FirstName = "Different"

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		fixture.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: "G1", FirstName: "Stored", LastName: "Guest"}, nil)
		fixture.bookingRepo.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest *guestModel.Guest, booking model.Booking) error {
				assert.Nil(t, guest)
				assert.Equal(t, "G1", booking.GuestID)

				return nil
			})

		_, err := fixture.service.CreateReservation(ctx, request, "staff-1")

		assert.NoError(t, err)
	})

	t.Run("unknown guest id creates the guest under that id", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		request := baseRequest()
		request.Guest.GuestID = "G9"
		request.Guest.Password = "secret-password"

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		fixture.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)
		fixture.bookingRepo.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest *guestModel.Guest, _ model.Booking) error {
				assert.NotNil(t, guest)
				assert.Equal(t, "G9", guest.ID)
				assert.NotEqual(t, "secret-password", guest.Password)
				assert.NoError(t, password.Verify("secret-password", guest.Password))

				return nil
			})

		_, err := fixture.service.CreateReservation(ctx, request, "staff-1")

		assert.NoError(t, err)
	})

	t.Run("rejects unknown room", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := fixture.service.CreateReservation(ctx, baseRequest(), "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects room closed for booking", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		room := availableRoom()
		room.Availability = false

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := fixture.service.CreateReservation(ctx, baseRequest(), "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		request := baseRequest()
		request.CheckOut = request.CheckIn

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)

		_, err := fixture.service.CreateReservation(ctx, request, "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("reports conflict when the room is taken at commit time", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		fixture.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		fixture.bookingRepo.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ErrRoomUnavailable)

		_, err := fixture.service.CreateReservation(ctx, baseRequest(), "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestGetBookingByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns booking joined with guest", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		joined := model.BookingWithGuest{
			Booking: model.Booking{
				ID:      "B1",
				GuestID: "G1",
				RoomID:  "R101",
				InDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				OutDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			},
			GuestFirstName:  "Amina",
			GuestMiddleName: "K",
			GuestLastName:   "Yusuf",
		}

		fixture.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fixture.bookingRepo.EXPECT().GetWithGuest(gomock.Any(), gomock.Any()).Return(joined, nil)
		fixture.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		response, err := fixture.service.GetByID(ctx, "B1")

		assert.NoError(t, err)
		assert.NotNil(t, response.Guest)
		assert.Equal(t, "Amina K Yusuf", response.Guest.FullName)
		assert.Equal(t, "2026-09-10", response.CheckIn)
		assert.Equal(t, "2026-09-12", response.CheckOut)
	})

	t.Run("returns not found for unknown booking", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		fixture.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fixture.bookingRepo.EXPECT().GetWithGuest(gomock.Any(), gomock.Any()).Return(model.BookingWithGuest{}, nil)

		_, err := fixture.service.GetByID(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("reports not found when no rows are affected", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		fixture.bookingRepo.EXPECT().
			UpdateAffecting(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := fixture.service.Update(ctx, dto.UpdateBookingRequest{BookingStatus: constant.BookingStatusCheckedIn}, "missing", "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("validates new check-out against the stored check-in", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		stored := model.Booking{
			ID:      "B1",
			InDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			OutDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		}

		fixture.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := fixture.service.Update(ctx, dto.UpdateBookingRequest{CheckOut: "2026-09-10"}, "B1", "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("updates booking status", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		updated := model.Booking{ID: "B1", BookingStatus: constant.BookingStatusCheckedIn}

		fixture.bookingRepo.EXPECT().
			UpdateAffecting(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) (int64, error) {
				assert.Equal(t, constant.BookingStatusCheckedIn, fields[model.FieldBookingStatus])

				return int64(1), nil
			})
		fixture.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		err := fixture.service.Update(ctx, dto.UpdateBookingRequest{BookingStatus: constant.BookingStatusCheckedIn}, "B1", "staff-1")

		assert.NoError(t, err)
	})
}

func TestSearchBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("filters the loaded set by guest name", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		bookings := []model.BookingWithGuest{
			{
				Booking:        model.Booking{ID: "B1", RoomID: "R101"},
				GuestFirstName: "Amina",
				GuestLastName:  "Yusuf",
			},
			{
				Booking:        model.Booking{ID: "B2", RoomID: "R102"},
				GuestFirstName: "Budi",
				GuestLastName:  "Santoso",
			},
		}

		fixture.bookingRepo.EXPECT().GetAllWithGuest(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)

		response, err := fixture.service.Search(ctx, "amina")

		assert.NoError(t, err)
		assert.Len(t, response.Bookings, 1)
		assert.Equal(t, "B1", response.Bookings[0].ID)
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		fixture := newBookingServiceFixture(t)

		bookings := []model.BookingWithGuest{
			{Booking: model.Booking{ID: "B1"}},
			{Booking: model.Booking{ID: "B2"}},
		}

		fixture.bookingRepo.EXPECT().GetAllWithGuest(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)

		response, err := fixture.service.Search(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, response.Bookings, 2)
	})
}
