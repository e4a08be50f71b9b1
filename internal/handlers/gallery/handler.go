package gallery

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/gallery/model"
	"hotel/internal/domains/gallery/model/dto"
	"hotel/internal/domains/gallery/service"
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
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.Get("/", handler.GetGalleryImages)
		routerGroup.Get("/{id}", handler.GetGalleryImageByID)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Post("/", handler.CreateGalleryImage)
			admin.Patch("/{id}", handler.UpdateGalleryImage)
			admin.Delete("/{id}", handler.DeleteGalleryImage)
		})
	})
}

// GetGalleryImages lists gallery images in presentation order. The listing is
// always restricted to active images, whatever the active flag says.
// @Summary Get gallery images
// @Tags Gallery
// @Produce json
// @Param featured query string false "true lists featured images only"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Router /v1/gallery [get]
func (handler *Handler) GetGalleryImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryImages")
	defer scope.End()

	query := r.URL.Query()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.PresentationOrder(model.TableName)

	filterGroup := gDto.NewFilterGroup()
	shared.ActiveAlways.Apply(&filterGroup, query.Get(constant.RequestParamActive), model.TableName)

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

	images, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery images")

		response.WithError(w, err)

		return
	}

	response.WithList(w, images)
}

// GetGalleryImageByID retrieves a gallery image by its ID.
// @Summary Get a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery image ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/gallery/{id} [get]
func (handler *Handler) GetGalleryImageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryImageByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	image, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery image")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, image)
}

// CreateGalleryImage handles the creation of a gallery image.
// @Summary Create a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryImageRequest true "Create Gallery Image Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/gallery [post]
// @Security BearerAuth
func (handler *Handler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGalleryImage")
	defer scope.End()

	var req dto.CreateGalleryImageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	image, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image created successfully by user " + user)

	response.WithDataMessage(w, http.StatusCreated, image, "Gallery image created successfully")
}

// UpdateGalleryImage updates the allow-listed fields of a gallery image.
// @Summary Update a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery image ID"
// @Param request body dto.UpdateGalleryImageRequest true "Update Gallery Image Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/gallery/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGalleryImage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateGalleryImageRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	image, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update gallery image")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, image, "Gallery image updated successfully")
}

// DeleteGalleryImage deletes a gallery image and its uploaded files.
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery image ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/gallery/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGalleryImage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Gallery image deleted successfully")
}
