package attraction

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/attraction/model"
	"hotel/internal/domains/attraction/model/dto"
	"hotel/internal/domains/attraction/service"
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
	service service.Attraction
	otel    otel.Otel
}

func New(service service.Attraction, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/attractions", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.Get("/", handler.GetAttractions)
		routerGroup.Get("/{slug}", handler.GetAttraction)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Post("/", handler.CreateAttraction)
			admin.Patch("/{slug}", handler.UpdateAttraction)
			admin.Delete("/{slug}", handler.DeleteAttraction)
		})
	})
}

// GetAttractions lists attractions in presentation order.
// @Summary Get all attractions
// @Tags Attraction
// @Produce json
// @Param active query string false "anything but false lists active attractions only"
// @Param featured query string false "true lists featured attractions only"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Router /v1/attractions [get]
func (handler *Handler) GetAttractions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttractions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.PresentationOrder(model.TableName)

	query := r.URL.Query()

	filterGroup := gDto.NewFilterGroup()
	shared.ActiveUnlessFalse.Apply(&filterGroup, query.Get(constant.RequestParamActive), model.TableName)

	if query.Get(constant.RequestParamFeatured) == constant.ValueTrue {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldIsFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	if category := query.Get(constant.RequestParamCategory); category != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	attractions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attractions")

		response.WithError(w, err)

		return
	}

	response.WithList(w, attractions)
}

// GetAttraction retrieves an attraction by its slug.
// @Summary Get an attraction by slug
// @Tags Attraction
// @Produce json
// @Param slug path string true "Attraction slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/attractions/{slug} [get]
func (handler *Handler) GetAttraction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttraction")
	defer scope.End()

	attraction, err := handler.service.GetBySlug(ctx, chi.URLParam(r, constant.RequestParamSlug))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attraction")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, attraction)
}

// CreateAttraction handles the creation of a new attraction.
// @Summary Create a new attraction
// @Tags Attraction
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/attractions [post]
// @Security BearerAuth
func (handler *Handler) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAttraction")
	defer scope.End()

	var req dto.CreateAttractionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	attraction, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create attraction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Attraction created successfully by user " + user)

	response.WithDataMessage(w, http.StatusCreated, attraction, "Attraction created successfully")
}

// UpdateAttraction updates the allow-listed fields of an attraction.
// @Summary Update an attraction
// @Tags Attraction
// @Accept json
// @Produce json
// @Param slug path string true "Attraction slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/attractions/{slug} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAttraction")
	defer scope.End()

	var req dto.UpdateAttractionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	attraction, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamSlug), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update attraction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Attraction updated successfully by user " + user)

	response.WithDataMessage(w, http.StatusOK, attraction, "Attraction updated successfully")
}

// DeleteAttraction deletes an attraction.
// @Summary Delete an attraction
// @Tags Attraction
// @Produce json
// @Param slug path string true "Attraction slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/attractions/{slug} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAttraction")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamSlug)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete attraction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Attraction deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Attraction deleted successfully")
}
