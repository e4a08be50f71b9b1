package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	fetchBackoffMin = 100 * time.Millisecond
	fetchBackoffMax = 5 * time.Second
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkaGo.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkaGo.Message) error
}

// consume is the fetch loop behind Consume. A closed reader ends it; other
// fetch errors are retried with a doubling delay.
func consume(ctx context.Context, reader messageReader, topic string, handler Handler) error {
	backoff := fetchBackoffMin

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer context done.")

				return nil
			}

			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				log.Warn().Err(err).Str("topic", topic).Msg("Kafka reader closed.")

				return fmt.Errorf("kafka reader closed: %w", err)
			}

			log.Error().Err(err).Str("topic", topic).Dur("backoff", backoff).Msg("Failed to read message from Kafka.")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}

			backoff = min(backoff*2, fetchBackoffMax)

			continue
		}

		backoff = fetchBackoffMin

		log.Info().Str("topic", topic).Str("key", string(msg.Key)).Msg("Received message from Kafka.")

		if err = handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("Failed to handle Kafka message.")

			continue
		}

		if err = reader.CommitMessages(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit Kafka message.")
		}
	}
}
