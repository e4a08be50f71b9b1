package blog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	categoryMocks "hotel/internal/domains/blogcategory/mocks"
	categoryDto "hotel/internal/domains/blogcategory/model/dto"
	"hotel/internal/domains/blogpost/mocks"
	"hotel/internal/domains/blogpost/model/dto"
	"hotel/internal/handlers/blog"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockBlogPost, *categoryMocks.MockBlogCategory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	posts := mocks.NewMockBlogPost(ctrl)
	categories := categoryMocks.NewMockBlogCategory(ctrl)
	handler := blog.New(posts, categories, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Get("/v1/blog/posts", handler.GetPosts)
	router.Get("/v1/blog/posts/{slug}", handler.GetPost)
	router.Get("/v1/blog/drafts", handler.GetDrafts)
	router.Get("/v1/blog/categories", handler.GetCategories)
	router.Post("/v1/blog/posts", handler.CreatePost)

	return router, posts, categories
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var envelope map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	return rec, envelope
}

func TestGetPosts(t *testing.T) {
	router, posts, _ := newRouter(t)

	t.Run("published only", func(t *testing.T) {
		posts.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BlogPostResponse, error) {
				where, args := filter.GetWhereClause()

				assert.Equal(t, "(blog_posts.is_published = :is_published)", where)
				assert.Equal(t, true, args["is_published"])
				assert.Equal(t, "blog_posts.published_at DESC, blog_posts.created_at DESC", params.OrderBy())

				return []dto.BlogPostResponse{{ID: 1, Tags: []string{}}}, nil
			})

		rec, body := serve(router, http.MethodGet, "/v1/blog/posts", "")

		post := body["data"].([]any)[0].(map[string]any)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, post["category"])
		assert.Nil(t, post["published_at"])
		assert.Contains(t, post, "featured_image")
	})

	t.Run("category slug filter", func(t *testing.T) {
		posts.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BlogPostResponse, error) {
				where, args := filter.GetWhereClause()

				assert.Contains(t, where, "blog_categories.slug = :category_slug")
				assert.Equal(t, "news", args["category_slug"])

				return nil, nil
			})

		rec, body := serve(router, http.MethodGet, "/v1/blog/posts?category=news", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(0), body["count"])
		assert.Equal(t, []any{}, body["data"])
	})
}

func TestGetDrafts(t *testing.T) {
	router, posts, _ := newRouter(t)

	posts.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BlogPostResponse, error) {
			_, args := filter.GetWhereClause()

			assert.Equal(t, false, args["is_published"])

			return []dto.BlogPostResponse{{ID: 2}}, nil
		})

	rec, _ := serve(router, http.MethodGet, "/v1/blog/drafts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPost(t *testing.T) {
	router, posts, _ := newRouter(t)

	posts.EXPECT().GetPublished(gomock.Any(), "draft").Return(dto.BlogPostResponse{}, failure.NotFound("Blog post"))

	rec, body := serve(router, http.MethodGet, "/v1/blog/posts/draft", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "error": "Blog post not found"}, body)
}

func TestCreatePost(t *testing.T) {
	router, posts, _ := newRouter(t)

	t.Run("missing content", func(t *testing.T) {
		rec, body := serve(router, http.MethodPost, "/v1/blog/posts", `{"title":"Opening"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", body["error"])
	})

	t.Run("conflict", func(t *testing.T) {
		posts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BlogPostResponse{}, failure.Conflict("Blog post slug already exists"))

		rec, body := serve(router, http.MethodPost, "/v1/blog/posts", `{"title":"Opening","content":"Hello"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Blog post slug already exists", body["error"])
	})
}

func TestGetCategories(t *testing.T) {
	router, _, categories := newRouter(t)

	categories.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]categoryDto.BlogCategoryResponse, error) {
			assert.Equal(t, "blog_categories.name ASC", params.OrderBy())

			return []categoryDto.BlogCategoryResponse{{ID: 1, Slug: "news", Name: "News"}}, nil
		})

	rec, body := serve(router, http.MethodGet, "/v1/blog/categories", "")

	category := body["data"].([]any)[0].(map[string]any)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "news", category["slug"])
	assert.Nil(t, category["color"])
}
