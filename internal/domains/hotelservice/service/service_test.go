package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/hotelservice/model"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	repoMocks "hotel/shared/repository/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.HotelService, *repoMocks.MockStore[model.Service], *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := repoMocks.NewMockStore[model.Service](ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestHotelService_Create(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name         string
		req          dto.CreateServiceRequest
		wantCurrency string
	}{
		{name: "currency defaults to USD", req: dto.CreateServiceRequest{Name: "Spa", Category: "wellness"}, wantCurrency: "USD"},
		{name: "currency upper cased", req: dto.CreateServiceRequest{Name: "Spa", Category: "wellness", PriceCurrency: "idr"}, wantCurrency: "IDR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, svc model.Service) (int64, error) {
					assert.Equal(t, "wellness", svc.Type)

					return 1, nil
				})

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCurrency, res.PriceCurrency)
			assert.Equal(t, "wellness", res.Category)
			assert.True(t, res.IsActive)
		})
	}
}

func TestHotelService_UpdateRoundTrip(t *testing.T) {
	svc, mockRepo, _ := newService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")

	price := 25.0
	current := model.Service{ID: 4, Name: "Breakfast", Type: "dining", Price: &price, PriceCurrency: "USD", IsActive: true}

	newPrice := 30.0
	active := false
	req := dto.UpdateServiceRequest{Category: "restaurant", Price: &newPrice, IsActive: &active}

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "restaurant", fields[model.FieldType])
			assert.NotContains(t, fields, "category")
			assert.NotContains(t, fields, model.FieldID)
			assert.NotContains(t, fields, constant.FieldCreatedAt)

			return nil
		})

	res, err := svc.Update(ctx, 4, req)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "restaurant", res.Category)
	assert.Equal(t, 30.0, *res.Price)
	assert.False(t, res.IsActive)
	assert.Equal(t, "Breakfast", res.Name)
	assert.Equal(t, "USD", res.PriceCurrency)
}

func TestHotelService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), "service:get:9", gomock.Any()).Return(errors.New("miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Service{}, nil)

	_, err := svc.Get(context.Background(), 9)

	assert.EqualError(t, err, "Service not found")
}
