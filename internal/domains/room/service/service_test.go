package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	repoMocks "hotel/shared/repository/mocks"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *repoMocks.MockStore[model.Room], *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := repoMocks.NewMockStore[model.Room](ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantCode  int
		wantSlug  string
	}{
		{
			name: "slug derived from name",
			req:  dto.CreateRoomRequest{Name: "Deluxe Suite", Capacity: 2, Price: 150},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (int64, error) {
						assert.Equal(t, "deluxe-suite", room.Slug)
						assert.True(t, room.IsActive)
						assert.Equal(t, "1", room.CreatedBy)

						return 5, nil
					})
			},
			wantSlug: "deluxe-suite",
		},
		{
			name: "slug taken",
			req:  dto.CreateRoomRequest{Slug: "deluxe", Name: "Deluxe", Capacity: 2, Price: 150},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "name without slug characters",
			req:       dto.CreateRoomRequest{Name: "***", Capacity: 2, Price: 150},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateRoomRequest{Name: "Deluxe", Capacity: 2, Price: 150},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(adminContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(5), res.ID)
			assert.Equal(t, tt.wantSlug, res.Slug)
			assert.Equal(t, []string{}, res.Amenities)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	params := gDto.QueryParams{Sorts: gDto.PresentationOrder(model.TableName)}
	filter := gDto.NewFilterGroup()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.Room{
		{ID: 1, Slug: "standard", Name: "Standard", Amenities: pq.StringArray{"wifi"}, IsActive: true},
		{ID: 2, Slug: "deluxe", Name: "Deluxe", IsActive: true},
	}, nil)

	res, err := svc.GetAll(context.Background(), params, filter)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, []string{"wifi"}, res[0].Amenities)
	assert.Equal(t, "deluxe", res[1].Slug)
}

func TestRoomService_GetBySlug(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:deluxe", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*dto.RoomResponse) = dto.RoomResponse{ID: 2, Slug: "deluxe"}

						return nil
					})
			},
		},
		{
			name: "unknown slug",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr: "Room not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetBySlug(context.Background(), "deluxe")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.True(t, failure.IsNotFound(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(2), res.ID)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	current := model.Room{ID: 3, Slug: "deluxe", Name: "Deluxe", Price: 100, Capacity: 2, IsActive: true}
	price := 180.5
	active := false

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, 180.5, fields[model.FieldPrice])
			assert.Equal(t, false, fields[model.FieldIsActive])
			assert.NotContains(t, fields, model.FieldID)
			assert.NotContains(t, fields, model.FieldName)
			assert.Equal(t, "1", fields[constant.FieldUpdatedBy])

			return nil
		})

	res, err := svc.Update(adminContext(), "deluxe", dto.UpdateRoomRequest{Price: &price, IsActive: &active})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.ID)
	assert.Equal(t, "Deluxe", res.Name)
	assert.Equal(t, 180.5, res.Price)
	assert.False(t, res.IsActive)
	assert.Equal(t, 2, res.Capacity)
}

func TestRoomService_Delete(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	t.Run("deleted", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: 3, Slug: "deluxe"}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(adminContext(), "deluxe")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := svc.Delete(adminContext(), "missing")

		assert.True(t, failure.IsNotFound(err))
	})
}
