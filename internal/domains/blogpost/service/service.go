package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	categoryModel "hotel/internal/domains/blogcategory/model"
	categoryRepo "hotel/internal/domains/blogcategory/repository"
	"hotel/internal/domains/blogpost/model"
	"hotel/internal/domains/blogpost/model/dto"
	"hotel/internal/domains/blogpost/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBlogPost    = "blogpost:get"
	cacheGetAllBlogPost = "blogpost:gets"
)

type BlogPost interface {
	Create(ctx context.Context, req dto.CreateBlogPostRequest) (dto.BlogPostResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BlogPostResponse, error)
	GetPublished(ctx context.Context, slug string) (dto.BlogPostResponse, error)
	Update(ctx context.Context, slug string, req dto.UpdateBlogPostRequest) (dto.BlogPostResponse, error)
	Delete(ctx context.Context, slug string) error
}

type serviceImpl struct {
	repo         repository.BlogPost
	categoryRepo categoryRepo.BlogCategory
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(
	repo repository.BlogPost,
	categoryRepo categoryRepo.BlogCategory,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) BlogPost {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlogPostRequest) (res dto.BlogPostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	post := req.ToModel(user)

	if post.Slug == "" {
		return res, failure.Validation([]failure.Violation{{Field: model.FieldSlug, Message: "slug is required"}})
	}

	if err = s.ensureSlugAvailable(ctx, post.Slug); err != nil {
		return res, err
	}

	if post.CategoryID != nil {
		if err = s.attachCategory(ctx, &post, *post.CategoryID); err != nil {
			return res, err
		}
	}

	post.ID, err = s.repo.Insert(ctx, post)
	if err != nil {
		log.Error().Err(err).Msg("failed to create blog post")

		return res, fmt.Errorf("failed to create blog post: %w", err)
	}

	res.FromModel(post)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBlogPost)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.BlogPostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlogPost, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blog posts")

		return res, nil
	}

	posts, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog posts")

		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}

	res = dto.FromModels(posts)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blog posts to cache")
		}
	}()

	return res, nil
}

// GetPublished returns a live post. Drafts are reported as missing.
func (s *serviceImpl) GetPublished(ctx context.Context, slug string) (res dto.BlogPostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublished")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBlogPost, slug)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blog post")

		return res, nil
	}

	post, err := s.get(ctx, slug)
	if err != nil {
		return res, err
	}

	if !post.IsPublished {
		return res, failure.NotFound(model.EntityLabel)
	}

	res.FromModel(post)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blog post to cache")
		}
	}()

	return res, nil
}

// Update applies the patch. published_at is stamped the first time a post
// goes live and kept when it is unpublished later.
func (s *serviceImpl) Update(ctx context.Context, slug string, req dto.UpdateBlogPostRequest) (res dto.BlogPostResponse, err error) {
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

	if req.CategoryID != nil && (current.CategoryID == nil || *req.CategoryID != *current.CategoryID) {
		if err = s.attachCategory(ctx, &current, *req.CategoryID); err != nil {
			return res, err
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if req.IsPublished != nil && *req.IsPublished && current.PublishedAt == nil {
		updatedFields[model.FieldPublishedAt] = updatedFields[constant.FieldUpdatedAt]
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update blog post")

		return res, fmt.Errorf("failed to update blog post: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	s.invalidate(ctx, slug, current.Slug)

	return res, nil
}

// Delete removes the post and, in the background, its uploaded featured image.
func (s *serviceImpl) Delete(ctx context.Context, slug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	post, err := s.get(ctx, slug)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(post.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete blog post")

		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	s.invalidate(ctx, slug)

	if post.FeaturedImage != nil {
		go s.deleteObject(context.WithoutCancel(ctx), *post.FeaturedImage)
	}

	return nil
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	objectName := s.s3.ObjectNameFromURL(url)
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.Delete(ctx, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
	}
}

func (s *serviceImpl) get(ctx context.Context, slug string) (model.BlogPost, error) {
	post, err := s.repo.Get(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog post")

		return post, fmt.Errorf("failed to get blog post: %w", err)
	}

	if post.ID == 0 {
		return post, failure.NotFound(model.EntityLabel)
	}

	return post, nil
}

func (s *serviceImpl) attachCategory(ctx context.Context, post *model.BlogPost, categoryID int64) error {
	category, err := s.categoryRepo.Get(ctx, shared.FilterByID(categoryID, categoryModel.FieldID, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog category")

		return fmt.Errorf("failed to get blog category: %w", err)
	}

	if category.ID == 0 {
		return failure.Validation([]failure.Violation{{Field: model.FieldCategoryID, Message: "category does not exist"}})
	}

	post.CategorySlug, post.CategoryName, post.CategoryColor = &category.Slug, &category.Name, category.Color

	return nil
}

func (s *serviceImpl) ensureSlugAvailable(ctx context.Context, slug string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterBySlug(slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blog post slug")

		return fmt.Errorf("failed to check blog post slug: %w", err)
	}

	if exist {
		return failure.Conflict("Blog post slug already exists")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, slugs ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, slug := range slugs {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBlogPost, slug)); err != nil {
				log.Error().Err(err).Msg("failed to delete blog post cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlogPost)
	}()
}
