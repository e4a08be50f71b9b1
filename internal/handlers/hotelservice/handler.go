package hotelservice

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/hotelservice/model"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/service"
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
	service service.HotelService
	otel    otel.Otel
}

func New(service service.HotelService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Post("/", handler.CreateService)
			admin.Patch("/{id}", handler.UpdateService)
			admin.Delete("/{id}", handler.DeleteService)
		})
	})
}

// GetServices lists hotel services in presentation order.
// @Summary Get services
// @Tags Service
// @Produce json
// @Param active query string false "true lists active services only"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	query := r.URL.Query()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.PresentationOrder(model.TableName)

	filterGroup := gDto.NewFilterGroup()
	shared.ActiveWhenTrue.Apply(&filterGroup, query.Get(constant.RequestParamActive), model.TableName)

	if category := query.Get(constant.RequestParamCategory); category != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithList(w, services)
}

// GetServiceByID retrieves a hotel service by its ID.
// @Summary Get a service
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	svc, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, svc)
}

// CreateService handles the creation of a hotel service.
// @Summary Create a service
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	var req dto.CreateServiceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	svc, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusCreated, svc, "Service created successfully")
}

// UpdateService updates the allow-listed fields of a hotel service.
// @Summary Update a service
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateServiceRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	svc, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, svc, "Service updated successfully")
}

// DeleteService deletes a hotel service.
// @Summary Delete a service
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}
