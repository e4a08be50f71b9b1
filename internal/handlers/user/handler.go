package user

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamRole = "role"

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers account management. Only admins may manage accounts.
func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))
		routerGroup.Use(auth.Auth, auth.RequireRole(constant.RoleAdmin))

		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Post("/", handler.CreateUser)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Patch("/{id}", handler.UpdateUser)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})
}

// GetUsers lists back-office accounts.
// @Summary Get users
// @Tags User
// @Produce json
// @Param active query string false "true lists active accounts only"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Envelope
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	query := request.URL.Query()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)
	queryParams.Sorts = gDto.NewestFirst(model.TableName)

	filterGroup := gDto.NewFilterGroup()
	shared.ActiveWhenTrue.Apply(&filterGroup, query.Get(constant.RequestParamActive), model.TableName)

	if role := query.Get(requestParamRole); role != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithList(writer, users)
}

// CreateUser creates a back-office account.
// @Summary Create a user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /v1/users [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	var req dto.CreateUserRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User created successfully by user " + actor)

	response.WithDataMessage(writer, http.StatusCreated, user, "User created successfully")
}

// GetUserByID retrieves an account.
// @Summary Get a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID), "user")
	if err != nil {
		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, user)
}

// UpdateUser changes the name, role or active flag of an account.
// @Summary Update a user
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID), "user")
	if err != nil {
		response.WithError(writer, err)

		return
	}

	var req dto.UpdateUserRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(writer, err)

		return
	}

	response.WithDataMessage(writer, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes an account.
// @Summary Delete a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID), "user")
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(writer, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User deleted successfully by user " + actor)

	response.WithMessage(writer, http.StatusOK, "User deleted successfully")
}
