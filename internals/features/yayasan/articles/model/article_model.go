package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/lifecycle"
)

type ArticleModel struct {
	ArticleID uuid.UUID `gorm:"column:article_id;type:uuid;default:gen_random_uuid();primaryKey" json:"article_id"`

	ArticleTitle   string `gorm:"column:article_title;type:varchar(150);not null" json:"article_title"`
	ArticleSlug    string `gorm:"column:article_slug;type:varchar(160);not null;unique" json:"article_slug"`
	ArticleContent string `gorm:"column:article_content;type:text;not null" json:"article_content"`

	// array tag: text[]
	ArticleTags pq.StringArray `gorm:"column:article_tags;type:text[]" json:"article_tags"`

	// meta fleksibel (JSONB): cover image, sumber, dll
	ArticleMeta datatypes.JSONMap `gorm:"column:article_meta;type:jsonb" json:"article_meta,omitempty"`

	ArticleAuthorID    *uuid.UUID `gorm:"column:article_author_id;type:uuid" json:"article_author_id,omitempty"`
	ArticlePublished   bool       `gorm:"column:article_published;not null;default:false" json:"article_published"`
	ArticlePublishedAt *time.Time `gorm:"column:article_published_at" json:"article_published_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	lifecycle.TombstoneFields
}

func (ArticleModel) TableName() string { return "articles" }

func (ArticleModel) Kind() string { return "article" }
