package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/review/model"
	"hotel/internal/domains/review/model/dto"
	"hotel/internal/domains/review/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageSubmitted = "Thank you for your review. It will be published after moderation."

	cacheGetAllReview = "review:gets"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ReviewResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateReviewRequest) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Review
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Review, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create stores a guest review. Reviews stay hidden until approved, so the
// public listing cache is left untouched.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var roomID *int64

	if req.RoomID != nil && *req.RoomID != "" {
		id, err := shared.ParseID(*req.RoomID, roomModel.EntityName)
		if err != nil {
			return res, err
		}

		exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room")

			return res, fmt.Errorf("failed to check room: %w", err)
		}

		if !exist {
			return res, failure.Validation([]failure.Violation{{Field: "roomId", Message: "room does not exist"}})
		}

		roomID = &id
	}

	review := req.ToModel(roomID)

	review.ID, err = s.repo.Insert(ctx, review)
	if err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	reviews, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	res = dto.FromModels(reviews)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

// Update moderates a review: approval and featuring are the only mutable fields.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateReviewRequest) (res dto.ReviewResponse, err error) {
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
		log.Error().Err(err).Msg("failed to update review")

		return res, fmt.Errorf("failed to update review: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	s.invalidate(ctx)

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
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Review, error) {
	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return review, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == 0 {
		return review, failure.NotFound(model.EntityLabel)
	}

	return review, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllReview)
	}()
}
