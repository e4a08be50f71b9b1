package contact

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/contact/model"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/domains/contact/service"
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
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.With(app.SubmissionLimit()).Post("/", handler.CreateContact)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Get("/", handler.GetContacts)
			admin.Patch("/{id}", handler.UpdateContactStatus)
			admin.Delete("/{id}", handler.DeleteContact)
		})
	})
}

// CreateContact stores a message sent from the contact form.
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /v1/contact [post]
func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	var req dto.CreateContactRequest
	if err := validator.ValidateSchema(r.Body, dto.CreateContactSchema, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusCreated, message, "Message sent successfully")
}

// GetContacts lists contact messages, newest first.
// @Summary Get contact messages
// @Tags Contact
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Envelope
// @Router /v1/contact [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.NewestFirst(model.TableName)

	filterGroup := gDto.NewFilterGroup()
	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	messages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	response.WithList(w, messages)
}

// UpdateContactStatus changes the status of a contact message.
// @Summary Update a contact message status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact message ID"
// @Param request body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/contact/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateContactStatusRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact message")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, message, "Message status updated successfully")
}

// DeleteContact deletes a contact message.
// @Summary Delete a contact message
// @Tags Contact
// @Produce json
// @Param id path string true "Contact message ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/contact/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact message")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}
