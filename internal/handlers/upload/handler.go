package upload

import (
	"errors"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/upload/model"
	"hotel/internal/domains/upload/model/dto"
	"hotel/internal/domains/upload/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Upload
	otel    otel.Otel
}

func New(service service.Upload, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/upload", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodPost))
		routerGroup.Use(middleware.Admin(auth)...)

		routerGroup.Post("/", handler.UploadImage)
	})
}

// UploadImage stores one image and returns its public URL.
// @Summary Upload an image
// @Description Accepts jpeg, png or webp up to 5MB in the "file" field.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString(constant.FormFile+" must be sent as "+constant.ContentTypeMultipartFormData))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		if errors.Is(err, http.ErrMissingFile) {
			err = failure.BadRequestFromString(constant.FormFile + " is required")
		}

		response.WithError(w, err)

		return
	}
	defer file.Close()

	res, err := handler.service.Upload(ctx, dto.UploadRequest{File: file, Header: fileHeader})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file_name", fileHeader.Filename).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)
	scope.SetAttribute(model.EntityName, res.FileName)

	response.WithData(w, http.StatusOK, res)
}
