package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/domains/virtualtour/model"
	"hotel/internal/domains/virtualtour/model/dto"
	"hotel/internal/domains/virtualtour/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetVirtualTour    = "virtualtour:get"
	cacheGetAllVirtualTour = "virtualtour:gets"
)

type VirtualTour interface {
	Create(ctx context.Context, req dto.CreateVirtualTourRequest) (dto.VirtualTourResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.VirtualTourResponse, error)
	Get(ctx context.Context, id int64) (dto.VirtualTourResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateVirtualTourRequest) (dto.VirtualTourResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.VirtualTour
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.VirtualTour, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) VirtualTour {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVirtualTourRequest) (res dto.VirtualTourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	tour := req.ToModel(user)

	if tour.RoomID != nil {
		room, err := s.getRoom(ctx, *tour.RoomID)
		if err != nil {
			return res, err
		}

		tour.RoomName, tour.RoomSlug = &room.Name, &room.Slug
	}

	tour.ID, err = s.repo.Insert(ctx, tour)
	if err != nil {
		log.Error().Err(err).Msg("failed to create virtual tour")

		return res, fmt.Errorf("failed to create virtual tour: %w", err)
	}

	res.FromModel(tour)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllVirtualTour)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.VirtualTourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVirtualTour, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for virtual tours")

		return res, nil
	}

	tours, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get virtual tours")

		return nil, fmt.Errorf("failed to get virtual tours: %w", err)
	}

	res = dto.FromModels(tours)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save virtual tours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.VirtualTourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetVirtualTour, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for virtual tour")

		return res, nil
	}

	tour, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(tour)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save virtual tour to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateVirtualTourRequest) (res dto.VirtualTourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if req.RoomID != nil && (current.RoomID == nil || *req.RoomID != *current.RoomID) {
		room, err := s.getRoom(ctx, *req.RoomID)
		if err != nil {
			return res, err
		}

		current.RoomName, current.RoomSlug = &room.Name, &room.Slug
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update virtual tour")

		return res, fmt.Errorf("failed to update virtual tour: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete virtual tour")

		return fmt.Errorf("failed to delete virtual tour: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.VirtualTour, error) {
	tour, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get virtual tour")

		return tour, fmt.Errorf("failed to get virtual tour: %w", err)
	}

	if tour.ID == 0 {
		return tour, failure.NotFound(model.EntityLabel)
	}

	return tour, nil
}

// getRoom resolves the room a tour points at. An unknown room is a client
// mistake, not a missing tour.
func (s *serviceImpl) getRoom(ctx context.Context, id int64) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return room, failure.Validation([]failure.Violation{{Field: model.FieldRoomID, Message: "room does not exist"}})
	}

	return room, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVirtualTour, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete virtual tour cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVirtualTour)
	}()
}
