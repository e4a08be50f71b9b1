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
	categoryModel "hotel/internal/domains/blogcategory/model"
	"hotel/internal/domains/blogpost/model"
	"hotel/internal/domains/blogpost/model/dto"
	"hotel/internal/domains/blogpost/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	repoMocks "hotel/shared/repository/mocks"
)

type fixture struct {
	svc          service.BlogPost
	repo         *repoMocks.MockStore[model.BlogPost]
	categoryRepo *repoMocks.MockStore[categoryModel.BlogCategory]
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:         repoMocks.NewMockStore[model.BlogPost](ctrl),
		categoryRepo: repoMocks.NewMockStore[categoryModel.BlogCategory](ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.categoryRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestBlogPostService_Create(t *testing.T) {
	categoryID := int64(2)

	tests := []struct {
		name      string
		req       dto.CreateBlogPostRequest
		setupMock func(f fixture)
		wantCode  int
		check     func(t *testing.T, res dto.BlogPostResponse)
	}{
		{
			name: "draft gets a slug from its title",
			req:  dto.CreateBlogPostRequest{Title: "Summer at the Lake", Content: "..."},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, post model.BlogPost) (int64, error) {
						assert.Equal(t, "summer-at-the-lake", post.Slug)
						assert.Nil(t, post.PublishedAt)

						return 1, nil
					})
			},
			check: func(t *testing.T, res dto.BlogPostResponse) {
				t.Helper()

				assert.Nil(t, res.PublishedAt)
				assert.Nil(t, res.Category)
				assert.Equal(t, []string{}, res.Tags)
			},
		},
		{
			name: "published post with category",
			req:  dto.CreateBlogPostRequest{Title: "Opening", Content: "...", IsPublished: true, CategoryID: &categoryID},
			setupMock: func(f fixture) {
				color := "#ff8800"
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(categoryModel.BlogCategory{ID: 2, Slug: "news", Name: "News", Color: &color}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			check: func(t *testing.T, res dto.BlogPostResponse) {
				t.Helper()

				color := "#ff8800"
				assert.NotNil(t, res.PublishedAt)
				assert.Equal(t, &dto.CategorySummary{ID: 2, Slug: "news", Name: "News", Color: &color}, res.Category)
			},
		},
		{
			name: "duplicate slug",
			req:  dto.CreateBlogPostRequest{Slug: "opening", Title: "Opening", Content: "..."},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: 409,
		},
		{
			name: "unknown category",
			req:  dto.CreateBlogPostRequest{Title: "Opening", Content: "...", CategoryID: &categoryID},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(categoryModel.BlogCategory{}, nil)
			},
			wantCode: 400,
		},
		{
			name:      "title without slug characters",
			req:       dto.CreateBlogPostRequest{Title: "!!!", Content: "..."},
			setupMock: func(fixture) {},
			wantCode:  400,
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
			tt.check(t, res)
		})
	}
}

func TestBlogPostService_GetPublished(t *testing.T) {
	t.Run("draft is hidden", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "blogpost:get:draft", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BlogPost{ID: 1, Slug: "draft"}, nil)

		_, err := f.svc.GetPublished(context.Background(), "draft")

		assert.EqualError(t, err, "Blog post not found")
	})

	t.Run("published post", func(t *testing.T) {
		f := newFixture(t)

		publishedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.BlogPost{ID: 1, Slug: "live", IsPublished: true, PublishedAt: &publishedAt}, nil)

		res, err := f.svc.GetPublished(context.Background(), "live")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, res.IsPublished)
		assert.NotNil(t, res.PublishedAt)
	})
}

func TestBlogPostService_Update(t *testing.T) {
	published := true
	unpublished := false

	t.Run("first publish stamps published_at", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BlogPost{ID: 1, Slug: "draft", Title: "Draft"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldIsPublished])
				assert.Equal(t, fields[constant.FieldUpdatedAt], fields[model.FieldPublishedAt])

				return nil
			})

		res, err := f.svc.Update(userContext(), "draft", dto.UpdateBlogPostRequest{IsPublished: &published})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, res.IsPublished)
		assert.NotNil(t, res.PublishedAt)
		assert.Equal(t, "Draft", res.Title)
	})

	t.Run("republishing keeps the first date", func(t *testing.T) {
		f := newFixture(t)

		first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.BlogPost{ID: 1, Slug: "live", IsPublished: true, PublishedAt: &first}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldPublishedAt)

				return nil
			})

		_, err := f.svc.Update(userContext(), "live", dto.UpdateBlogPostRequest{IsPublished: &published})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unpublishing keeps published_at", func(t *testing.T) {
		f := newFixture(t)

		first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.BlogPost{ID: 1, Slug: "live", IsPublished: true, PublishedAt: &first}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Update(userContext(), "live", dto.UpdateBlogPostRequest{IsPublished: &unpublished})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.False(t, res.IsPublished)
		assert.NotNil(t, res.PublishedAt)
	})

	t.Run("slug taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BlogPost{ID: 1, Slug: "draft"}, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Update(userContext(), "draft", dto.UpdateBlogPostRequest{Slug: "live"})

		assert.EqualError(t, err, "Blog post slug already exists")
	})
}

func TestBlogPostService_Delete(t *testing.T) {
	f := newFixture(t)

	image := "https://cdn.hotel.test/uploads/cover.png"
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BlogPost{ID: 1, Slug: "live", FeaturedImage: &image}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.s3.EXPECT().ObjectNameFromURL(image).Return("uploads/cover.png")
	f.s3.EXPECT().Delete(gomock.Any(), "", "uploads/cover.png").Return(nil)

	err := f.svc.Delete(userContext(), "live")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}
