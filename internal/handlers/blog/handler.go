package blog

import (
	"net/http"

	"hotel/infras/otel"
	categoryModel "hotel/internal/domains/blogcategory/model"
	categoryDto "hotel/internal/domains/blogcategory/model/dto"
	categoryService "hotel/internal/domains/blogcategory/service"
	"hotel/internal/domains/blogpost/model"
	"hotel/internal/domains/blogpost/model/dto"
	"hotel/internal/domains/blogpost/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	posts      service.BlogPost
	categories categoryService.BlogCategory
	otel       otel.Otel
}

func New(posts service.BlogPost, categories categoryService.BlogCategory, otel otel.Otel) Handler {
	return Handler{
		posts:      posts,
		categories: categories,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, auth middleware.Auth) {
	router.Route("/blog", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete))

		routerGroup.Get("/posts", handler.GetPosts)
		routerGroup.Get("/posts/{slug}", handler.GetPost)
		routerGroup.Get("/categories", handler.GetCategories)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(middleware.Admin(auth)...)

			admin.Get("/drafts", handler.GetDrafts)
			admin.Post("/posts", handler.CreatePost)
			admin.Patch("/posts/{slug}", handler.UpdatePost)
			admin.Delete("/posts/{slug}", handler.DeletePost)

			admin.Post("/categories", handler.CreateCategory)
			admin.Patch("/categories/{slug}", handler.UpdateCategory)
			admin.Delete("/categories/{slug}", handler.DeleteCategory)
		})
	})
}

func latestFirst() []gDto.Sort {
	return []gDto.Sort{
		{Field: model.TableName + "." + model.FieldPublishedAt, Dir: gDto.SortDirDesc},
		{Field: model.TableName + "." + constant.FieldCreatedAt, Dir: gDto.SortDirDesc},
	}
}

// GetPosts lists published posts, latest first.
// @Summary Get blog posts
// @Tags Blog
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {object} response.Envelope
// @Router /v1/blog/posts [get]
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = latestFirst()

	filterGroup := gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldIsPublished,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	if category := r.URL.Query().Get(constant.RequestParamCategory); category != "" {
		filterGroup.Add(gDto.Filter{
			ArgName:  "category_slug",
			Field:    categoryModel.FieldSlug,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    categoryModel.TableName,
		})
	}

	posts, err := handler.posts.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog posts")

		response.WithError(w, err)

		return
	}

	response.WithList(w, posts)
}

// GetDrafts lists unpublished posts for the editors.
// @Summary Get draft posts
// @Tags Blog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /v1/blog/drafts [get]
// @Security BearerAuth
func (handler *Handler) GetDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrafts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = gDto.NewestFirst(model.TableName)

	filterGroup := gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldIsPublished,
		Operator: gDto.FilterOperatorEq,
		Value:    false,
		Table:    model.TableName,
	})

	posts, err := handler.posts.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get draft posts")

		response.WithError(w, err)

		return
	}

	response.WithList(w, posts)
}

// GetPost retrieves a published post by its slug.
// @Summary Get a blog post
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/blog/posts/{slug} [get]
func (handler *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPost")
	defer scope.End()

	post, err := handler.posts.GetPublished(ctx, chi.URLParam(r, constant.RequestParamSlug))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog post")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, post)
}

// CreatePost handles the creation of a blog post.
// @Summary Create a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogPostRequest true "Create Blog Post Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /v1/blog/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	var req dto.CreateBlogPostRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	post, err := handler.posts.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog post")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusCreated, post, "Blog post created successfully")
}

// UpdatePost updates the allow-listed fields of a post.
// @Summary Update a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param request body dto.UpdateBlogPostRequest true "Update Blog Post Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/blog/posts/{slug} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	var req dto.UpdateBlogPostRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	post, err := handler.posts.Update(ctx, chi.URLParam(r, constant.RequestParamSlug), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog post")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, post, "Blog post updated successfully")
}

// DeletePost deletes a post.
// @Summary Delete a blog post
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/blog/posts/{slug} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	if err := handler.posts.Delete(ctx, chi.URLParam(r, constant.RequestParamSlug)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog post")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blog post deleted successfully")
}

// GetCategories lists blog categories by name.
// @Summary Get blog categories
// @Tags Blog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /v1/blog/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)
	queryParams.Sorts = []gDto.Sort{{Field: categoryModel.TableName + "." + categoryModel.FieldName, Dir: gDto.SortDirAsc}}

	categories, err := handler.categories.GetAll(ctx, queryParams, gDto.NewFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog categories")

		response.WithError(w, err)

		return
	}

	response.WithList(w, categories)
}

// CreateCategory handles the creation of a blog category.
// @Summary Create a blog category
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body categoryDto.CreateBlogCategoryRequest true "Create Blog Category Request"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /v1/blog/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	var req categoryDto.CreateBlogCategoryRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	category, err := handler.categories.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog category")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusCreated, category, "Blog category created successfully")
}

// UpdateCategory updates a blog category.
// @Summary Update a blog category
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "Category slug"
// @Param request body categoryDto.UpdateBlogCategoryRequest true "Update Blog Category Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/blog/categories/{slug} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	var req categoryDto.UpdateBlogCategoryRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	category, err := handler.categories.Update(ctx, chi.URLParam(r, constant.RequestParamSlug), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog category")

		response.WithError(w, err)

		return
	}

	response.WithDataMessage(w, http.StatusOK, category, "Blog category updated successfully")
}

// DeleteCategory deletes a blog category. Its posts become uncategorized.
// @Summary Delete a blog category
// @Tags Blog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/blog/categories/{slug} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	if err := handler.categories.Delete(ctx, chi.URLParam(r, constant.RequestParamSlug)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog category")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blog category deleted successfully")
}
