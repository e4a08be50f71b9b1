package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/gallery/model"
	"hotel/internal/domains/gallery/model/dto"
	"hotel/internal/domains/gallery/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGallery    = "gallery:get"
	cacheGetAllGallery = "gallery:gets"
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateGalleryImageRequest) (dto.GalleryImageResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.GalleryImageResponse, error)
	Get(ctx context.Context, id int64) (dto.GalleryImageResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateGalleryImageRequest) (dto.GalleryImageResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryImageRequest) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	image := req.ToModel(user)

	image.ID, err = s.repo.Insert(ctx, image)
	if err != nil {
		log.Error().Err(err).Msg("failed to create gallery image")

		return res, fmt.Errorf("failed to create gallery image: %w", err)
	}

	res.FromModel(image)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllGallery)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGallery, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for galleries")

		return res, nil
	}

	images, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get galleries")

		return nil, fmt.Errorf("failed to get gallery images: %w", err)
	}

	res = dto.FromModels(images)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save galleries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGallery, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery")

		return res, nil
	}

	image, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(image)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateGalleryImageRequest) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update gallery")

		return res, fmt.Errorf("failed to update gallery image: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	s.invalidate(ctx, id)

	return res, nil
}

// Delete removes the record and, in the background, the uploaded object
// behind its URLs. Foreign URLs are left alone.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	image, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	s.invalidate(ctx, id)

	urls := []string{image.ImageURL}
	if image.ThumbnailURL != nil {
		urls = append(urls, *image.ThumbnailURL)
	}

	go s.deleteObjects(context.WithoutCancel(ctx), urls)

	return nil
}

func (s *serviceImpl) deleteObjects(ctx context.Context, urls []string) {
	for _, url := range urls {
		objectName := s.s3.ObjectNameFromURL(url)
		if objectName == constant.Empty {
			continue
		}

		if err := s.s3.Delete(ctx, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.GalleryImage, error) {
	image, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return image, fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == 0 {
		return image, failure.NotFound(model.EntityLabel)
	}

	return image, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGallery, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)
	}()
}
