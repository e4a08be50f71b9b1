package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/domains/virtualtour/model"
	"hotel/internal/domains/virtualtour/model/dto"
	"hotel/internal/domains/virtualtour/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	repoMocks "hotel/shared/repository/mocks"
)

type fixture struct {
	svc      service.VirtualTour
	repo     *repoMocks.MockStore[model.VirtualTour]
	roomRepo *repoMocks.MockStore[roomModel.Room]
	cache    *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     repoMocks.NewMockStore[model.VirtualTour](ctrl),
		roomRepo: repoMocks.NewMockStore[roomModel.Room](ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.roomRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestVirtualTourService_Create(t *testing.T) {
	tourData := datatypes.JSON(`{"scenes":[{"id":"lobby"}]}`)

	tests := []struct {
		name      string
		req       dto.CreateVirtualTourRequest
		setupMock func(f fixture)
		wantCode  int
		wantRoom  bool
	}{
		{
			name: "tour without a room",
			req:  dto.CreateVirtualTourRequest{Title: "Lobby", TourType: model.TourTypePanorama, TourURL: "https://tours.hotel.test/lobby", TourData: tourData},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tour model.VirtualTour) (int64, error) {
						assert.True(t, tour.IsActive)
						assert.Nil(t, tour.RoomID)
						assert.JSONEq(t, string(tourData), string(tour.TourData))

						return 3, nil
					})
			},
		},
		{
			name: "tour attached to a room",
			req:  dto.CreateVirtualTourRequest{RoomID: int64Ptr(2), Title: "Suite", TourType: model.TourTypeVideo, TourURL: "https://tours.hotel.test/suite"},
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: 2, Name: "Suite", Slug: "suite"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(3), nil)
			},
			wantRoom: true,
		},
		{
			name: "unknown room",
			req:  dto.CreateVirtualTourRequest{RoomID: int64Ptr(8), Title: "Suite", TourType: model.TourTypeVideo, TourURL: "https://tours.hotel.test/suite"},
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  dto.CreateVirtualTourRequest{Title: "Lobby", TourType: model.TourTypePanorama, TourURL: "https://tours.hotel.test/lobby"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(userContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(3), res.ID)

			if !tt.wantRoom {
				assert.Nil(t, res.Room)

				return
			}

			assert.Equal(t, &dto.RoomSummary{ID: 2, Name: "Suite", Slug: "suite"}, res.Room)
		})
	}
}

func TestVirtualTourService_Get(t *testing.T) {
	t.Run("room projection", func(t *testing.T) {
		f := newFixture(t)

		name, slug := "Deluxe", "deluxe"
		f.cache.EXPECT().Get(gomock.Any(), "virtualtour:get:5", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VirtualTour{
			ID: 5, RoomID: int64Ptr(1), RoomName: &name, RoomSlug: &slug,
			TourData: datatypes.JSON(`{"hotspots":2}`),
		}, nil)

		res, err := f.svc.Get(context.Background(), 5)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		body, err := json.Marshal(res)
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, map[string]any{"id": float64(1), "name": "Deluxe", "slug": "deluxe"}, decoded["room"])
		assert.Equal(t, map[string]any{"hotspots": float64(2)}, decoded["tour_data"])
		assert.NotContains(t, decoded, "room_name")
	})

	t.Run("tour without room serializes null", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VirtualTour{ID: 5}, nil)

		res, err := f.svc.Get(context.Background(), 5)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		body, _ := json.Marshal(res)
		assert.Contains(t, string(body), `"room":null`)
		assert.Contains(t, string(body), `"room_id":null`)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VirtualTour{}, nil)

		_, err := f.svc.Get(context.Background(), 5)

		assert.EqualError(t, err, "Virtual tour not found")
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestVirtualTourService_Update(t *testing.T) {
	t.Run("moving the tour to another room", func(t *testing.T) {
		f := newFixture(t)

		oldName, oldSlug := "Standard", "standard"
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.VirtualTour{ID: 5, RoomID: int64Ptr(1), RoomName: &oldName, RoomSlug: &oldSlug, Title: "Tour"}, nil)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: 2, Name: "Suite", Slug: "suite"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, int64(2), fields[model.FieldRoomID])
				assert.NotContains(t, fields, "room_name")

				return nil
			})

		res, err := f.svc.Update(userContext(), 5, dto.UpdateVirtualTourRequest{RoomID: int64Ptr(2)})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "Tour", res.Title)
		assert.Equal(t, &dto.RoomSummary{ID: 2, Name: "Suite", Slug: "suite"}, res.Room)
	})

	t.Run("same room skips the lookup", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VirtualTour{ID: 5, RoomID: int64Ptr(1)}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Update(userContext(), 5, dto.UpdateVirtualTourRequest{RoomID: int64Ptr(1), Title: "Renamed"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestVirtualTourService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VirtualTour{ID: 5}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := f.svc.Delete(userContext(), 5)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}
