package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/internal/domains/notification/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Notification publishes guest notifications and delivers them from the worker.
type Notification interface {
	BookingConfirmed(ctx context.Context, event model.BookingConfirmation) error
	HandleBookingConfirmed(ctx context.Context, message kafkaGo.Message) error
}

type serviceImpl struct {
	cfg    *config.Config
	kafka  kafka.Client
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, mailer mailer.Mailer, otel otel.Otel) Notification {
	return &serviceImpl{
		cfg:    cfg,
		kafka:  kafka,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) BookingConfirmed(ctx context.Context, event model.BookingConfirmation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	message := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingConfirmed, message); err != nil {
		log.Error().Err(err).Int64("booking_id", event.BookingID).Msg("failed to publish booking confirmation")

		return fmt.Errorf("failed to publish booking confirmation: %w", err)
	}

	return nil
}

// HandleBookingConfirmed emails the guest of a confirmed booking.
func (s *serviceImpl) HandleBookingConfirmed(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleBookingConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[model.BookingConfirmation](message)
	if err != nil {
		// a payload that cannot be decoded never will be, so it is skipped
		log.Error().Err(err).Str("key", string(message.Key)).Msg("skipping malformed booking confirmation")

		return nil
	}

	mail := mailer.Mail{
		To:      event.GuestEmail,
		Subject: event.Subject(),
		Body:    event.Body(s.cfg.App.Name),
	}

	if err = s.mailer.Send(ctx, mail); err != nil {
		return fmt.Errorf("failed to email booking confirmation: %w", err)
	}

	log.Info().Int64("booking_id", event.BookingID).Msg("booking confirmation delivered")

	return nil
}
