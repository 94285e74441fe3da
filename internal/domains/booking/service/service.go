package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/password"
	"hotelier/shared/timezone"
)

const (
	cacheKeyBooking  = "booking"
	cacheKeyBookings = "bookings"
)

type Booking interface {
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, username string) (dto.BookingResponse, error)
	GetByID(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Search(ctx context.Context, term string) (dto.GetBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id, username string) error
}

type serviceImpl struct {
	repository repository.Booking
	guestRepo  guestRepo.Guest
	roomRepo   roomRepo.Room
	kafka      kafka.Client
	cache      cache.RedisCache
	config     *config.Config
	otel       otel.Otel
}

func New(
	repository repository.Booking,
	guestRepository guestRepo.Guest,
	roomRepository roomRepo.Room,
	kafkaClient kafka.Client,
	redisCache cache.RedisCache,
	config *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repository: repository,
		guestRepo:  guestRepository,
		roomRepo:   roomRepository,
		kafka:      kafkaClient,
		cache:      redisCache,
		config:     config,
		otel:       otel,
	}
}

// CreateReservation books a room for a guest. The guest draft is resolved
// against the directory first: a known guest id keeps the stored record, an
// unknown or empty id creates the guest together with the booking in one
// transaction. The room is re-checked for overlapping stays at commit time.
func (s *serviceImpl) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, username string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "createReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return dto.BookingResponse{}, err
	}

	if room.ID == "" {
		return dto.BookingResponse{}, failure.BadRequestFromString("room does not exist")
	}

	if !room.Availability {
		return dto.BookingResponse{}, failure.Conflict("room is not open for booking")
	}

	newGuest, guestID, err := s.resolveGuest(ctx, req.Guest, username)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	booking, err := req.ToModel(guestID)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	booking.CreatedAt = timezone.Now()
	booking.CreatedBy = username
	booking.ModifiedAt = booking.CreatedAt
	booking.ModifiedBy = username

	if err := s.repository.CreateReservation(ctx, newGuest, booking); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return dto.BookingResponse{}, failure.Conflict("room is already booked for the requested dates")
		}

		return dto.BookingResponse{}, err
	}

	s.publishEvent(ctx, dto.EventTypeReservationCreated, booking)
	s.invalidateCaches(ctx, booking.ID)

	return dto.BookingResponse{}.FromModel(booking), nil
}

// resolveGuest returns the guest to create alongside the booking, or nil with
// the id of the existing guest when the draft points at a known record.
func (s *serviceImpl) resolveGuest(ctx context.Context, draft dto.GuestDraft, username string) (*guestModel.Guest, string, error) {
	if draft.GuestID != "" {
		existing, err := s.guestRepo.Get(ctx, shared.FilterByID(draft.GuestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			return nil, "", err
		}

		if existing.ID != "" {
			return nil, existing.ID, nil
		}
	}

	guest := draft.ToModel()

	if guest.Password != "" {
		hashed, err := password.Hash(guest.Password)
		if err != nil {
			return nil, "", err
		}

		guest.Password = hashed
	}

	guest.CreatedAt = timezone.Now()
	guest.CreatedBy = username
	guest.ModifiedAt = guest.CreatedAt
	guest.ModifiedBy = username

	return &guest, guest.ID, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheKeyBooking, id)
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	booking, err := s.repository.GetWithGuest(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return dto.BookingResponse{}, err
	}

	if booking.ID == "" {
		return dto.BookingResponse{}, failure.NotFound("booking")
	}

	response = dto.BookingResponse{}.FromJoinedModel(booking)

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache booking")
	}

	return response, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (response dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyBookings, params, filter)
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	bookings, err := s.repository.GetAllWithGuest(ctx, params, filter)
	if err != nil {
		return dto.GetBookingsResponse{}, err
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		return dto.GetBookingsResponse{}, err
	}

	response = dto.GetBookingsResponse{}.FromJoinedModels(bookings, shared.CalculateTotalPage(total, params.Limit), total)

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache bookings")
	}

	return response, nil
}

// Search loads every booking with its guest and filters the set in memory.
// An empty term returns the full set.
func (s *serviceImpl) Search(ctx context.Context, term string) (response dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "searchBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repository.GetAllWithGuest(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		return dto.GetBookingsResponse{}, err
	}

	matched := Filter(bookings, term)

	return dto.GetBookingsResponse{}.FromJoinedModels(matched, 1, len(matched)), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "updateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updatedFields := shared.TransformFields(req, username)

	if err := s.applyStayWindow(ctx, req, id, updatedFields); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	affected, err := s.repository.UpdateAffecting(ctx, updatedFields, filter)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return failure.Conflict("room is already booked for the requested dates")
		}

		return err
	}

	if affected == 0 {
		return failure.NotFound("booking")
	}

	booking, err := s.repository.Get(ctx, filter)
	if err == nil && booking.ID != "" {
		s.publishEvent(ctx, dto.EventTypeBookingUpdated, booking)
	}

	s.invalidateCaches(ctx, id)

	return nil
}

// applyStayWindow validates and applies updated stay dates. When only one end
// of the stay changes, the other end comes from the stored booking so the
// check-out stays strictly after the check-in.
func (s *serviceImpl) applyStayWindow(ctx context.Context, req dto.UpdateBookingRequest, id string, updatedFields map[string]any) error {
	if req.CheckIn == "" && req.CheckOut == "" {
		return nil
	}

	current, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	if current.ID == "" {
		return failure.NotFound("booking")
	}

	inDate := current.InDate
	outDate := current.OutDate

	if req.CheckIn != "" {
		inDate, err = timezone.Parse(constant.DateFormatDate, req.CheckIn)
		if err != nil {
			return failure.BadRequestFromString("check_in must be a valid date")
		}

		updatedFields[model.FieldInDate] = inDate
	}

	if req.CheckOut != "" {
		outDate, err = timezone.Parse(constant.DateFormatDate, req.CheckOut)
		if err != nil {
			return failure.BadRequestFromString("check_out must be a valid date")
		}

		updatedFields[model.FieldOutDate] = outDate
	}

	if !outDate.After(inDate) {
		return failure.BadRequestFromString("check_out must be after check_in")
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	go func(ctx context.Context) {
		event := dto.BookingEvent{}.FromModel(eventType, booking)

		message := kafka.Message{
			Key:   booking.ID,
			Value: event,
		}

		if err := s.kafka.SendMessages(ctx, constant.KafkaTopicBookingEvents, message); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Str("type", eventType).Msg("failed to publish booking event")
		}
	}(context.WithoutCancel(ctx))
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	go func(ctx context.Context) {
		shared.InvalidateCaches(ctx, s.cache, cacheKeyBookings)
		shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheKeyBooking, id))
	}(context.WithoutCancel(ctx))
}
