package dto

import (
	"hotel/internal/domains/blogpost/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/lib/pq"
)

type CreateBlogPostRequest struct {
	Slug          string   `json:"slug"           validate:"omitempty,slug,max=160"`
	Title         string   `json:"title"          validate:"required,notblank,max=200"`
	Excerpt       *string  `json:"excerpt"        validate:"omitempty,max=500"`
	Content       string   `json:"content"        validate:"required,notblank"`
	FeaturedImage *string  `json:"featured_image" validate:"omitempty,url"`
	CategoryID    *int64   `json:"category_id"    validate:"omitempty,gt=0"`
	Author        *string  `json:"author"         validate:"omitempty,max=120"`
	Tags          []string `json:"tags"           validate:"omitempty,dive,notblank"`
	IsPublished   bool     `json:"is_published"`
}

// ToModel derives a missing slug from the title. A post created as
// published is stamped with the creation time.
func (c *CreateBlogPostRequest) ToModel(user string) model.BlogPost {
	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Title)
	}

	now := timezone.Now()

	post := model.BlogPost{
		Slug:          slug,
		Title:         c.Title,
		Excerpt:       c.Excerpt,
		Content:       c.Content,
		FeaturedImage: c.FeaturedImage,
		CategoryID:    c.CategoryID,
		Author:        c.Author,
		Tags:          pq.StringArray(c.Tags),
		IsPublished:   c.IsPublished,
		Metadata:      gModel.NewMetadata(now, user),
	}

	if c.IsPublished {
		post.PublishedAt = &now
	}

	return post
}

type UpdateBlogPostRequest struct {
	Slug          string         `db:"slug"           json:"slug"           validate:"omitempty,slug,max=160"`
	Title         string         `db:"title"          json:"title"          validate:"omitempty,notblank,max=200"`
	Excerpt       *string        `db:"excerpt"        json:"excerpt"        validate:"omitempty,max=500"`
	Content       string         `db:"content"        json:"content"        validate:"omitempty,notblank"`
	FeaturedImage *string        `db:"featured_image" json:"featured_image" validate:"omitempty,url"`
	CategoryID    *int64         `db:"category_id"    json:"category_id"    validate:"omitempty,gt=0"`
	Author        *string        `db:"author"         json:"author"         validate:"omitempty,max=120"`
	Tags          pq.StringArray `db:"tags"           json:"tags"           validate:"omitempty,dive,notblank"`
	IsPublished   *bool          `db:"is_published"   json:"is_published"`
}

type CategorySummary struct {
	ID    int64   `json:"id"`
	Slug  string  `json:"slug"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type BlogPostResponse struct {
	ID            int64            `json:"id"`
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Excerpt       *string          `json:"excerpt"`
	Content       string           `json:"content"`
	FeaturedImage *string          `json:"featured_image"`
	CategoryID    *int64           `json:"category_id"`
	Author        *string          `json:"author"`
	Tags          []string         `json:"tags"`
	IsPublished   bool             `json:"is_published"`
	PublishedAt   *string          `json:"published_at"`
	Category      *CategorySummary `json:"category"`
	gDto.Metadata
}

func (r *BlogPostResponse) FromModel(model model.BlogPost) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Title = model.Title
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.FeaturedImage = model.FeaturedImage
	r.CategoryID = model.CategoryID
	r.Author = model.Author
	r.Tags = []string(model.Tags)
	r.IsPublished = model.IsPublished
	r.PublishedAt = nil
	r.Category = nil

	if r.Tags == nil {
		r.Tags = []string{}
	}

	if model.PublishedAt != nil {
		publishedAt := timezone.Format(*model.PublishedAt, constant.DateFormat)
		r.PublishedAt = &publishedAt
	}

	if model.CategoryID != nil && model.CategorySlug != nil && model.CategoryName != nil {
		r.Category = &CategorySummary{
			ID:    *model.CategoryID,
			Slug:  *model.CategorySlug,
			Name:  *model.CategoryName,
			Color: model.CategoryColor,
		}
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.BlogPost) []BlogPostResponse {
	res := make([]BlogPostResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
