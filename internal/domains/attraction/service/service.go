package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/attraction/model"
	"hotel/internal/domains/attraction/model/dto"
	"hotel/internal/domains/attraction/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAttraction    = "attraction:get"
	cacheGetAllAttraction = "attraction:gets"
)

type Attraction interface {
	Create(ctx context.Context, req dto.CreateAttractionRequest) (dto.AttractionResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.AttractionResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.AttractionResponse, error)
	Update(ctx context.Context, slug string, req dto.UpdateAttractionRequest) (dto.AttractionResponse, error)
	Delete(ctx context.Context, slug string) error
}

type serviceImpl struct {
	repo  repository.Attraction
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Attraction, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Attraction {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAttractionRequest) (res dto.AttractionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	attraction := req.ToModel(user)

	if attraction.Slug == "" {
		return res, failure.Validation([]failure.Violation{{Field: model.FieldSlug, Message: "slug is required"}})
	}

	if err = s.ensureSlugAvailable(ctx, attraction.Slug); err != nil {
		return res, err
	}

	attraction.ID, err = s.repo.Insert(ctx, attraction)
	if err != nil {
		log.Error().Err(err).Msg("failed to create attraction")

		return res, fmt.Errorf("failed to create attraction: %w", err)
	}

	res.FromModel(attraction)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAttraction)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.AttractionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAttraction, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for attractions")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attractions")

		return nil, fmt.Errorf("failed to get attractions: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save attractions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.AttractionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAttraction, slug)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for attraction")

		return res, nil
	}

	attraction, err := s.get(ctx, slug)
	if err != nil {
		return res, err
	}

	res.FromModel(attraction)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save attraction to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, slug string, req dto.UpdateAttractionRequest) (res dto.AttractionResponse, err error) {
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
		log.Error().Err(err).Msg("failed to update attraction")

		return res, fmt.Errorf("failed to update attraction: %w", err)
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

	attraction, err := s.get(ctx, slug)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(attraction.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete attraction")

		return fmt.Errorf("failed to delete attraction: %w", err)
	}

	s.invalidate(ctx, slug)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, slug string) (model.Attraction, error) {
	attraction, err := s.repo.Get(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get attraction")

		return attraction, fmt.Errorf("failed to get attraction: %w", err)
	}

	if attraction.ID == 0 {
		return attraction, failure.NotFound(model.EntityLabel)
	}

	return attraction, nil
}

func (s *serviceImpl) ensureSlugAvailable(ctx context.Context, slug string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check attraction slug")

		return fmt.Errorf("failed to check attraction slug: %w", err)
	}

	if exist {
		return failure.Conflict("Attraction slug already exists")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, slugs ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, slug := range slugs {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAttraction, slug)); err != nil {
				log.Error().Err(err).Msg("failed to delete attraction from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAttraction)
	}()
}
