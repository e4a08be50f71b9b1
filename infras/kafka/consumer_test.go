package kafka

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fetchResult struct {
	msg kafkaGo.Message
	err error
}

type fakeReader struct {
	results   []fetchResult
	fallback  error
	fetches   int
	committed []string
}

func (f *fakeReader) FetchMessage(context.Context) (kafkaGo.Message, error) {
	f.fetches++

	if len(f.results) == 0 {
		return kafkaGo.Message{}, f.fallback
	}

	next := f.results[0]
	f.results = f.results[1:]

	return next.msg, next.err
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	for _, msg := range msgs {
		f.committed = append(f.committed, string(msg.Key))
	}

	return nil
}

func TestConsume(t *testing.T) {
	t.Run("closed reader stops the loop", func(t *testing.T) {
		reader := &fakeReader{fallback: io.EOF}

		err := consume(context.Background(), reader, "booking.confirmed", func(context.Context, kafkaGo.Message) error {
			t.Fatal("handler must not run")

			return nil
		})

		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, 1, reader.fetches)
	})

	t.Run("fetch errors wait before retrying", func(t *testing.T) {
		reader := &fakeReader{fallback: errors.New("broker unavailable")}

		ctx, cancel := context.WithTimeout(context.Background(), fetchBackoffMin/2)
		defer cancel()

		err := consume(ctx, reader, "booking.confirmed", func(context.Context, kafkaGo.Message) error { return nil })

		assert.NoError(t, err)
		assert.Equal(t, 1, reader.fetches)
	})

	t.Run("commits only handled messages", func(t *testing.T) {
		reader := &fakeReader{
			results: []fetchResult{
				{msg: kafkaGo.Message{Key: []byte("booking-1")}},
				{err: errors.New("leader not available")},
				{msg: kafkaGo.Message{Key: []byte("booking-2")}},
			},
			fallback: io.EOF,
		}

		start := time.Now()
		err := consume(context.Background(), reader, "booking.confirmed", func(_ context.Context, msg kafkaGo.Message) error {
			if string(msg.Key) == "booking-2" {
				return errors.New("smtp down")
			}

			return nil
		})

		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, 4, reader.fetches)
		assert.Equal(t, []string{"booking-1"}, reader.committed)
		assert.GreaterOrEqual(t, time.Since(start), fetchBackoffMin)
	})
}
