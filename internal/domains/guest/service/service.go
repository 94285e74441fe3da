package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/domains/guest/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/password"
)

const (
	cacheKeyGuest  = "guest"
	cacheKeyGuests = "guests"
)

type Guest interface {
	GetByID(ctx context.Context, id string) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id, username string) error
}

type serviceImpl struct {
	repository repository.Guest
	cache      cache.RedisCache
	config     *config.Config
	otel       otel.Otel
}

func New(repository repository.Guest, redisCache cache.RedisCache, config *config.Config, otel otel.Otel) Guest {
	return &serviceImpl{
		repository: repository,
		cache:      redisCache,
		config:     config,
		otel:       otel,
	}
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (response dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheKeyGuest, id)
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	guest, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return dto.GuestResponse{}, err
	}

	if guest.ID == "" {
		return dto.GuestResponse{}, failure.NotFound("guest")
	}

	response = dto.GuestResponse{}.FromModel(guest)

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache guest")
	}

	return response, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (response dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "getGuests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyGuests, params, filter)
	if err := s.cache.Get(ctx, cacheKey, &response); err == nil {
		return response, nil
	}

	guests, err := s.repository.GetAll(ctx, params, filter)
	if err != nil {
		return dto.GetGuestsResponse{}, err
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		return dto.GetGuestsResponse{}, err
	}

	response = dto.GetGuestsResponse{}.FromModels(guests, shared.CalculateTotalPage(total, params.Limit), total)

	if err := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache guests")
	}

	return response, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "updateGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repository.Exist(ctx, filter)
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound("guest")
	}

	updatedFields := shared.TransformFields(req, username)

	if req.Password != "" {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			return err
		}

		updatedFields[model.FieldPassword] = hashed
	}

	if err := s.repository.Update(ctx, updatedFields, filter); err != nil {
		return err
	}

	s.invalidateCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	go func(ctx context.Context) {
		shared.InvalidateCaches(ctx, s.cache, cacheKeyGuests)
		shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheKeyGuest, id))
	}(context.WithoutCancel(ctx))
}
