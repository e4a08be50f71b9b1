package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.RoomResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.RoomResponse, error)
	Update(ctx context.Context, slug string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, slug string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	room := req.ToModel(user)

	if room.Slug == "" {
		return res, failure.Validation([]failure.Violation{{Field: model.FieldSlug, Message: "slug is required"}})
	}

	if err = s.ensureSlugAvailable(ctx, room.Slug); err != nil {
		return res, err
	}

	room.ID, err = s.repo.Insert(ctx, room)
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllRoom)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, slug)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.get(ctx, slug)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, slug string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.get(ctx, slug)
	if err != nil {
		return res, err
	}

	if req.Slug != "" && req.Slug != current.Slug {
		if err = s.ensureSlugAvailable(ctx, req.Slug); err != nil {
			return res, err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	s.invalidate(ctx, slug, current.Slug)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, slug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.get(ctx, slug)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(room.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidate(ctx, slug)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, slug string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return room, failure.NotFound(model.EntityLabel)
	}

	return room, nil
}

func (s *serviceImpl) ensureSlugAvailable(ctx context.Context, slug string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room slug")

		return fmt.Errorf("failed to check room slug: %w", err)
	}

	if exist {
		return failure.Conflict("Room slug already exists")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, slugs ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, slug := range slugs {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, slug)); err != nil {
				log.Error().Err(err).Msg("failed to delete room from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()
}
