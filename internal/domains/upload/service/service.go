package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/upload/model"
	"hotel/internal/domains/upload/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	fieldFile          = "file"
	randomSuffixLength = 8
)

var maxSizeRule = fmt.Sprintf("maxfilesize=%d", model.MaxSizeMB)

type Upload interface {
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Upload {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

// Upload stores an image under the upload directory. The size limit is checked
// before the content is read and the content type is sniffed from the bytes,
// never taken from the client.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Header == nil || req.File == nil {
		return res, failure.BadRequestFromString(fieldFile + " is required")
	}

	if err = validator.ValidateField(fieldFile, req.Header.Size, maxSizeRule); err != nil {
		return res, err
	}

	data, err := io.ReadAll(io.LimitReader(req.File, model.MaxSizeBytes+1))
	if err != nil {
		return res, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if err = validator.ValidateField(fieldFile, int64(len(data)), maxSizeRule); err != nil {
		return res, err
	}

	detected := mimetype.Detect(data)
	if err = validator.ValidateField(fieldFile, detected.String(), "mimetypes="+model.AllowedTypes); err != nil {
		return res, err
	}

	fileName := s.fileName(req.Header.Filename, detected.Extension())

	url, err := s.s3.Upload(ctx, s.directory(), fileName, detected.String(), data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	scope.SetAttribute("file_name", fileName)
	res.FromModel(url, fileName)

	return res, nil
}

func (s *serviceImpl) directory() string {
	if s.cfg.App.Upload.Directory == "" {
		return "uploads"
	}

	return s.cfg.App.Upload.Directory
}

// fileName is <unix-millis>-<random><ext>. The original extension is kept
// when present.
func (s *serviceImpl) fileName(original, detectedExt string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = detectedExt
	}

	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomSuffixLength]

	return fmt.Sprintf("%d-%s%s", timezone.Now().UnixMilli(), random, ext)
}
