package model

import (
	"time"

	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName   = "blog_posts"
	EntityName  = "blog post"
	EntityLabel = "Blog post"

	FieldID            = "id"
	FieldSlug          = "slug"
	FieldTitle         = "title"
	FieldExcerpt       = "excerpt"
	FieldContent       = "content"
	FieldFeaturedImage = "featured_image"
	FieldCategoryID    = "category_id"
	FieldAuthor        = "author"
	FieldTags          = "tags"
	FieldIsPublished   = "is_published"
	FieldPublishedAt   = "published_at"
)

type BlogPost struct {
	ID            int64          `db:"id"             generated:"true"`
	Slug          string         `db:"slug"`
	Title         string         `db:"title"`
	Excerpt       *string        `db:"excerpt"`
	Content       string         `db:"content"`
	FeaturedImage *string        `db:"featured_image"`
	CategoryID    *int64         `db:"category_id"`
	Author        *string        `db:"author"`
	Tags          pq.StringArray `db:"tags"`
	IsPublished   bool           `db:"is_published"`
	PublishedAt   *time.Time     `db:"published_at"`
	CategorySlug  *string        `db:"category_slug"  table:"blog_categories" column:"slug"`
	CategoryName  *string        `db:"category_name"  table:"blog_categories" column:"name"`
	CategoryColor *string        `db:"category_color" table:"blog_categories" column:"color"`
	model.Metadata
}

func (BlogPost) GetJoinQuery() string {
	return "LEFT JOIN blog_categories ON blog_categories.id = blog_posts.category_id"
}
