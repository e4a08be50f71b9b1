package virtualtour

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/virtualtour/model"
	"hotel/internal/domains/virtualtour/model/dto"
	"hotel/internal/domains/virtualtour/service"
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
	service service.VirtualTour
	otel    otel.Otel
}

func New(service service.VirtualTour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/virtual-tours", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.Get("/", handler.GetVirtualTours)
		routerGroup.Get("/{id}", handler.GetVirtualTourByID)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Post("/", handler.CreateVirtualTour)
			admin.Patch("/{id}", handler.UpdateVirtualTour)
			admin.Delete("/{id}", handler.DeleteVirtualTour)
		})
	})
}

// GetVirtualTours lists virtual tours in presentation order.
// @Summary Get virtual tours
// @Tags VirtualTour
// @Produce json
// @Param active query string false "anything but false lists active tours only"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/virtual-tours [get]
func (handler *Handler) GetVirtualTours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVirtualTours")
	defer scope.End()

	query := r.URL.Query()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.PresentationOrder(model.TableName)

	filterGroup := gDto.NewFilterGroup()
	shared.ActiveUnlessFalse.Apply(&filterGroup, query.Get(constant.RequestParamActive), model.TableName)

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

	tours, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get virtual tours")

		response.WithError(w, err)

		return
	}

	response.WithList(w, tours)
}

// GetVirtualTourByID retrieves a virtual tour by its ID.
// @Summary Get a virtual tour
// @Tags VirtualTour
// @Produce json
// @Param id path string true "Virtual tour ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/virtual-tours/{id} [get]
func (handler *Handler) GetVirtualTourByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVirtualTourByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	tour, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get virtual tour")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, tour)
}

// CreateVirtualTour handles the creation of a virtual tour.
// @Summary Create a virtual tour
// @Tags VirtualTour
// @Accept json
// @Produce json
// @Param request body dto.CreateVirtualTourRequest true "Create Virtual Tour Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/virtual-tours [post]
// @Security BearerAuth
func (handler *Handler) CreateVirtualTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVirtualTour")
	defer scope.End()

	var req dto.CreateVirtualTourRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	tour, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create virtual tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Virtual tour created successfully by user " + user)

	response.WithDataMessage(w, http.StatusCreated, tour, "Virtual tour created successfully")
}

// UpdateVirtualTour updates the allow-listed fields of a virtual tour.
// @Summary Update a virtual tour
// @Tags VirtualTour
// @Accept json
// @Produce json
// @Param id path string true "Virtual tour ID"
// @Param request body dto.UpdateVirtualTourRequest true "Update Virtual Tour Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/virtual-tours/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVirtualTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVirtualTour")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateVirtualTourRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	tour, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update virtual tour")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, tour, "Virtual tour updated successfully")
}

// DeleteVirtualTour deletes a virtual tour.
// @Summary Delete a virtual tour
// @Tags VirtualTour
// @Produce json
// @Param id path string true "Virtual tour ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/virtual-tours/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVirtualTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVirtualTour")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete virtual tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Virtual tour deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Virtual tour deleted successfully")
}
