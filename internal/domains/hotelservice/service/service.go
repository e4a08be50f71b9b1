package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotelservice/model"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
)

type HotelService interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ServiceResponse, error)
	Get(ctx context.Context, id int64) (dto.ServiceResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateServiceRequest) (dto.ServiceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Service
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) HotelService {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	svc := req.ToModel(user)

	svc.ID, err = s.repo.Insert(ctx, svc)
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	res.FromModel(svc)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllService)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	services, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	res = dto.FromModels(services)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	svc, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(svc)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	req.PriceCurrency = strings.ToUpper(req.PriceCurrency)
	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return res, fmt.Errorf("failed to update service: %w", err)
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
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Service, error) {
	svc, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return svc, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == 0 {
		return svc, failure.NotFound(model.EntityLabel)
	}

	return svc, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()
}
