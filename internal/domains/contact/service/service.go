package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/contact/model"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/domains/contact/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ContactResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateContactStatusRequest) (dto.ContactResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Contact
	otel otel.Otel
}

func New(repo repository.Contact, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	message := req.ToModel()

	message.ID, err = s.repo.Insert(ctx, message)
	if err != nil {
		log.Error().Err(err).Msg("failed to create contact message")

		return res, fmt.Errorf("failed to create contact message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}

	return dto.FromModels(messages), nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateContactStatusRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return res, fmt.Errorf("failed to get contact message: %w", err)
	}

	if current.ID == 0 {
		return res, failure.NotFound(model.EntityLabel)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact message")

		return res, fmt.Errorf("failed to update contact message: %w", err)
	}

	shared.ApplyFields(&current, updatedFields)
	res.FromModel(current)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check contact message")

		return fmt.Errorf("failed to check contact message: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityLabel)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete contact message")

		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	return nil
}
