package event

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	notificationService "hotel/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
)

var errNoTopic = errors.New("booking confirmed topic is not configured")

// Consumer runs the notification worker.
type Consumer struct {
	Config       *config.Config
	Kafka        kafka.Client
	Notification notificationService.Notification
}

func New(cfg *config.Config, kafka kafka.Client, notification notificationService.Notification) *Consumer {
	return &Consumer{
		Config:       cfg,
		Kafka:        kafka,
		Notification: notification,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	topic := c.Config.Kafka.Topics.BookingConfirmed
	if topic == "" {
		return errNoTopic
	}

	log.Info().Str("topic", topic).Str("group", c.Config.Kafka.ConsumerGroup).Msg("Starting booking notification consumer.")

	if err := c.Kafka.Consume(ctx, c.Config.Kafka.ConsumerGroup, topic, c.Notification.HandleBookingConfirmed); err != nil {
		return fmt.Errorf("failed to consume %s: %w", topic, err)
	}

	if err := c.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client.")
	}

	return nil
}
