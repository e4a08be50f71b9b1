package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/mailer"
	mailerMocks "hotel/infras/mailer/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var confirmation = model.BookingConfirmation{
	BookingID:  12,
	GuestName:  "Ana",
	GuestEmail: "ana@example.com",
	RoomName:   "Deluxe",
	CheckIn:    "2024-01-01",
	CheckOut:   "2024-01-03",
	Guests:     2,
	Nights:     2,
	TotalPrice: 300,
}

func newService(t *testing.T) (service.Notification, *kafkaMocks.MockClient, *mailerMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.App.Name = "Seaside Hotel"
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"

	return service.New(cfg, mockKafka, mockMailer, otelMocks.NewOtel()), mockKafka, mockMailer
}

func TestBookingConfirmed(t *testing.T) {
	svc, mockKafka, _ := newService(t)

	t.Run("published", func(t *testing.T) {
		mockKafka.EXPECT().SendMessages(gomock.Any(), "booking.confirmed", kafka.Message{Key: "12", Value: confirmation}).Return(nil)

		assert.NoError(t, svc.BookingConfirmed(context.Background(), confirmation))
	})

	t.Run("broker down", func(t *testing.T) {
		mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))

		assert.Error(t, svc.BookingConfirmed(context.Background(), confirmation))
	})
}

func TestHandleBookingConfirmed(t *testing.T) {
	svc, _, mockMailer := newService(t)

	payload, err := json.Marshal(confirmation)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		message   kafkaGo.Message
		setupMock func()
		wantErr   bool
	}{
		{
			name:    "emails the guest",
			message: kafkaGo.Message{Key: []byte("12"), Value: payload},
			setupMock: func() {
				mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mail mailer.Mail) error {
						assert.Equal(t, "ana@example.com", mail.To)
						assert.Equal(t, "Booking confirmation #12", mail.Subject)
						assert.Contains(t, mail.Body, "Nights: 2")
						assert.Contains(t, mail.Body, "Total: 300.00")
						assert.Contains(t, mail.Body, "Seaside Hotel")

						return nil
					})
			},
		},
		{
			name:      "malformed payload is skipped",
			message:   kafkaGo.Message{Value: []byte("{")},
			setupMock: func() {},
		},
		{
			name:    "mail failure is retried",
			message: kafkaGo.Message{Value: payload},
			setupMock: func() {
				mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.HandleBookingConfirmed(context.Background(), tt.message)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
