package kafka_test

import (
	"testing"

	"hotel/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type bookingEvent struct {
	BookingID int64   `json:"booking_id"`
	Total     float64 `json:"total_price"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "booking-7", Value: bookingEvent{BookingID: 7, Total: 300}}

	kafkaMessage, err := message.ToKafkaMessage()
	assert.NoError(t, err)
	assert.Equal(t, []byte("booking-7"), kafkaMessage.Key)
	assert.JSONEq(t, `{"booking_id":7,"total_price":300}`, string(kafkaMessage.Value))

	decoded, err := kafka.Decode[bookingEvent](kafkaMessage)
	assert.NoError(t, err)
	assert.Equal(t, bookingEvent{BookingID: 7, Total: 300}, decoded)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := kafka.Decode[bookingEvent](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	message := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}
