package review

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/review/model"
	"hotel/internal/domains/review/model/dto"
	"hotel/internal/domains/review/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.Get("/", handler.GetReviews)
		routerGroup.With(app.SubmissionLimit()).Post("/", handler.CreateReview)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Get("/pending", handler.GetPendingReviews)
			admin.Patch("/{id}", handler.UpdateReview)
			admin.Delete("/{id}", handler.DeleteReview)
		})
	})
}

// GetReviews lists approved reviews, newest first.
// @Summary Get reviews
// @Tags Review
// @Produce json
// @Param featured query string false "true lists featured reviews only"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Envelope
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	query := r.URL.Query()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.NewestFirst(model.TableName)

	filterGroup := approval(true)

	if query.Get(constant.RequestParamFeatured) == constant.ValueTrue {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldIsFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	if raw := query.Get(model.FieldRoomID); raw != "" {
		roomID, err := shared.ParseID(raw, "room")
		if err != nil {
			response.WithError(w, err)

			return
		}

		filterGroup.Add(gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithList(w, reviews)
}

// GetPendingReviews lists reviews waiting for moderation, oldest first.
// @Summary Get pending reviews
// @Tags Review
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /v1/reviews/pending [get]
// @Security BearerAuth
func (handler *Handler) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = []gDto.Sort{{Field: model.TableName + "." + constant.FieldCreatedAt, Dir: gDto.SortDirAsc}}

	reviews, err := handler.service.GetAll(ctx, queryParams, approval(false))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending reviews")

		response.WithError(w, err)

		return
	}

	response.WithList(w, reviews)
}

// CreateReview stores a review sent by a guest.
// @Summary Submit a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	var req dto.CreateReviewRequest
	if err := validator.ValidateSchema(r.Body, dto.CreateReviewSchema, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusCreated, review, service.MessageSubmitted)
}

// UpdateReview approves or features a review.
// @Summary Moderate a review
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Moderation"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/reviews/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateReviewRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update review")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview deletes a review.
// @Summary Delete a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}

func approval(approved bool) gDto.FilterGroup {
	return gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldIsApproved,
		Operator: gDto.FilterOperatorEq,
		Value:    approved,
		Table:    model.TableName,
	})
}
