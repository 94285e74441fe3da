package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

const (
	cacheKeyRoom      = "room"
	cacheKeyRooms     = "rooms"
	cacheKeyRoomTypes = "room_types"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest, username string) (dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetRoomsResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id, username string) error
	Delete(ctx context.Context, id string) error
	RoomTypes(ctx context.Context) (dto.GetRoomTypesResponse, error)
	FindAvailable(ctx context.Context, req dto.AvailabilityRequest) (dto.GetAvailableRoomsResponse, error)
}

type serviceImpl struct {
	repository repository.Room
	cache      cache.RedisCache
	config     *config.Config
	otel       otel.Otel
}

func New(repository repository.Room, redisCache cache.RedisCache, config *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repository: repository,
		cache:      redisCache,
		config:     config,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest, username string) (response dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "createRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := req.ToModel()
	room.CreatedAt = timezone.Now()
	room.CreatedBy = username
	room.ModifiedAt = room.CreatedAt
	room.ModifiedBy = username

	if err := s.repository.Insert(ctx, room); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return dto.RoomResponse{}, failure.Conflict("room already exists")
		}

		return dto.RoomResponse{}, err
	}

	s.invalidateCaches(ctx, room.ID)

	return dto.RoomResponse{}.FromModel(room), nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (response dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheKeyRoom, id)
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	room, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return dto.RoomResponse{}, err
	}

	if room.ID == "" {
		return dto.RoomResponse{}, failure.NotFound("room")
	}

	response = dto.RoomResponse{}.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache room")
	}

	return response, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (response dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyRooms, params, filter)
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	rooms, err := s.repository.GetAll(ctx, params, filter)
	if err != nil {
		return dto.GetRoomsResponse{}, err
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		return dto.GetRoomsResponse{}, err
	}

	response = dto.GetRoomsResponse{}.FromModels(rooms, shared.CalculateTotalPage(total, params.Limit), total)

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache rooms")
	}

	return response, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "updateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repository.Exist(ctx, filter)
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound("room")
	}

	if err := s.repository.Update(ctx, shared.TransformFields(req, username), filter); err != nil {
		return err
	}

	s.invalidateCaches(ctx, id)

	return nil
}

// Delete removes a room that has no bookings. Rooms referenced by any booking
// are kept so booking history stays intact.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "deleteRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repository.Exist(ctx, filter)
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound("room")
	}

	if err := s.repository.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("room has bookings and cannot be deleted")
		}

		return err
	}

	s.invalidateCaches(ctx, id)

	return nil
}

func (s *serviceImpl) RoomTypes(ctx context.Context) (response dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getRoomTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheKeyRoomTypes, "all")
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	roomTypes, err := s.repository.RoomTypes(ctx)
	if err != nil {
		return dto.GetRoomTypesResponse{}, err
	}

	response = dto.GetRoomTypesResponse{RoomTypes: roomTypes}

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache room types")
	}

	return response, nil
}

// FindAvailable lists rooms of the requested type free for the whole stay.
// Results are never cached.
func (s *serviceImpl) FindAvailable(ctx context.Context, req dto.AvailabilityRequest) (response dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "findAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Window()
	if err != nil {
		return dto.GetAvailableRoomsResponse{}, err
	}

	rooms, err := s.repository.FindAvailable(ctx, req.RoomType, checkIn, checkOut)
	if err != nil {
		return dto.GetAvailableRoomsResponse{}, err
	}

	return dto.GetAvailableRoomsResponse{}.FromModels(rooms), nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	go func(ctx context.Context) {
		shared.InvalidateCaches(ctx, s.cache, cacheKeyRooms)
		shared.InvalidateCaches(ctx, s.cache, cacheKeyRoomTypes)
		shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheKeyRoom, id))
	}(context.WithoutCancel(ctx))
}
