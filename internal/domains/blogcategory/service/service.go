package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/blogcategory/model"
	"hotel/internal/domains/blogcategory/model/dto"
	"hotel/internal/domains/blogcategory/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBlogCategory = "blogcategory:gets"

	// posts embed their category, so a category change stales them too
	cacheBlogPost = "blogpost:"
)

type BlogCategory interface {
	Create(ctx context.Context, req dto.CreateBlogCategoryRequest) (dto.BlogCategoryResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BlogCategoryResponse, error)
	Update(ctx context.Context, slug string, req dto.UpdateBlogCategoryRequest) (dto.BlogCategoryResponse, error)
	Delete(ctx context.Context, slug string) error
}

type serviceImpl struct {
	repo  repository.BlogCategory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BlogCategory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BlogCategory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlogCategoryRequest) (res dto.BlogCategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	category := req.ToModel(user)

	if category.Slug == "" {
		return res, failure.Validation([]failure.Violation{{Field: model.FieldSlug, Message: "slug is required"}})
	}

	if err = s.ensureSlugAvailable(ctx, category.Slug); err != nil {
		return res, err
	}

	category.ID, err = s.repo.Insert(ctx, category)
	if err != nil {
		log.Error().Err(err).Msg("failed to create blog category")

		return res, fmt.Errorf("failed to create blog category: %w", err)
	}

	res.FromModel(category)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBlogCategory)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.BlogCategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlogCategory, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blog categories")

		return res, nil
	}

	categories, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog categories")

		return nil, fmt.Errorf("failed to get blog categories: %w", err)
	}

	res = dto.FromModels(categories)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blog categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, slug string, req dto.UpdateBlogCategoryRequest) (res dto.BlogCategoryResponse, err error) {
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
		log.Error().Err(err).Msg("failed to update blog category")

		return res, fmt.Errorf("failed to update blog category: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	s.invalidate(ctx)

	return res, nil
}

// Delete removes the category. Its posts stay and become uncategorized.
func (s *serviceImpl) Delete(ctx context.Context, slug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	category, err := s.get(ctx, slug)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(category.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete blog category")

		return fmt.Errorf("failed to delete blog category: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, slug string) (model.BlogCategory, error) {
	category, err := s.repo.Get(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog category")

		return category, fmt.Errorf("failed to get blog category: %w", err)
	}

	if category.ID == 0 {
		return category, failure.NotFound(model.EntityLabel)
	}

	return category, nil
}

func (s *serviceImpl) ensureSlugAvailable(ctx context.Context, slug string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blog category slug")

		return fmt.Errorf("failed to check blog category slug: %w", err)
	}

	if exist {
		return failure.Conflict("Blog category slug already exists")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlogCategory)
		shared.InvalidateCaches(c, s.cache, cacheBlogPost)
	}()
}
