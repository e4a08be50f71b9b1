package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/gallery/model"
	"hotel/internal/domains/gallery/model/dto"
	"hotel/internal/domains/gallery/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	repoMocks "hotel/shared/repository/mocks"
)

func newService(t *testing.T) (service.Gallery, *repoMocks.MockStore[model.GalleryImage], *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := repoMocks.NewMockStore[model.GalleryImage](ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3), mockRepo, mockCache, mockS3
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestGalleryService_Create(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateGalleryImageRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateGalleryImageRequest{Title: "Lobby", ImageURL: "https://cdn.hotel.test/uploads/a.png"},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, image model.GalleryImage) (int64, error) {
						assert.True(t, image.IsActive)
						assert.Equal(t, "test-user-id", image.CreatedBy)

						return 4, nil
					})
			},
		},
		{
			name: "repository error",
			req:  dto.CreateGalleryImageRequest{Title: "Lobby", ImageURL: "https://cdn.hotel.test/uploads/a.png"},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(userContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
			assert.Nil(t, res.ThumbnailURL)
		})
	}
}

func TestGalleryService_GetAll(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repoMocks.NewMockStore[model.GalleryImage](ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]dto.GalleryImageResponse)) = []dto.GalleryImageResponse{{ID: 1}}

				return nil
			})

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.NewFilterGroup())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("cache miss reads the database", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.GalleryImage{{ID: 1, IsFeatured: true, IsActive: true}, {ID: 2, IsActive: true}}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.NewFilterGroup())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.True(t, res[0].IsFeatured)
	})
}

func TestGalleryService_Update(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()

	t.Run("patch applied to response", func(t *testing.T) {
		featured := true
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{ID: 3, Title: "Pool", IsActive: true}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldIsFeatured])
				assert.NotContains(t, fields, model.FieldID)
				assert.NotContains(t, fields, model.FieldTitle)

				return nil
			})

		res, err := svc.Update(userContext(), 3, dto.UpdateGalleryImageRequest{IsFeatured: &featured})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, res.IsFeatured)
		assert.Equal(t, "Pool", res.Title)
	})

	t.Run("unknown image", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{}, nil)

		_, err := svc.Update(userContext(), 9, dto.UpdateGalleryImageRequest{})

		assert.EqualError(t, err, "Gallery image not found")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGalleryService_Delete(t *testing.T) {
	t.Run("removes uploaded objects only", func(t *testing.T) {
		svc, mockRepo, _, mockS3 := newService(t)

		thumb := "https://images.example.com/t.png"
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.GalleryImage{ID: 3, ImageURL: "https://cdn.hotel.test/uploads/a.png", ThumbnailURL: &thumb}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		mockS3.EXPECT().ObjectNameFromURL("https://cdn.hotel.test/uploads/a.png").Return("uploads/a.png")
		mockS3.EXPECT().ObjectNameFromURL(thumb).Return("")
		mockS3.EXPECT().Delete(gomock.Any(), "", "uploads/a.png").Return(nil)

		err := svc.Delete(userContext(), 3)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("storage failure does not fail the delete", func(t *testing.T) {
		svc, mockRepo, _, mockS3 := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.GalleryImage{ID: 3, ImageURL: "https://cdn.hotel.test/uploads/a.png"}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockS3.EXPECT().ObjectNameFromURL(gomock.Any()).Return("uploads/a.png")
		mockS3.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

		err := svc.Delete(userContext(), 3)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unknown image", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{}, nil)

		assert.EqualError(t, svc.Delete(userContext(), 3), "Gallery image not found")
	})
}
