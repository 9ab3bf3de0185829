package dto

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	m "pesantrenku_backend/internals/features/yayasan/articles/model"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify: "Kajian Ba'da Maghrib" -> "kajian-ba-da-maghrib"
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type CreateArticleRequest struct {
	Title   string            `json:"article_title" validate:"required,min=3,max=150"`
	Content string            `json:"article_content" validate:"required,min=10"`
	Tags    []string          `json:"article_tags" validate:"omitempty,max=10,dive,min=1,max=30"`
	Meta    datatypes.JSONMap `json:"article_meta"`
	Publish bool              `json:"article_publish"`
}

func (r *CreateArticleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	cleaned := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	r.Tags = cleaned
}

func (r CreateArticleRequest) ToModel(authorID *uuid.UUID) m.ArticleModel {
	return m.ArticleModel{
		ArticleTitle:     r.Title,
		ArticleSlug:      Slugify(r.Title),
		ArticleContent:   r.Content,
		ArticleTags:      pq.StringArray(r.Tags),
		ArticleMeta:      r.Meta,
		ArticleAuthorID:  authorID,
		ArticlePublished: r.Publish,
	}
}

type UpdateArticleRequest struct {
	Title   *string           `json:"article_title" validate:"omitempty,min=3,max=150"`
	Content *string           `json:"article_content" validate:"omitempty,min=10"`
	Tags    []string          `json:"article_tags" validate:"omitempty,max=10,dive,min=1,max=30"`
	Meta    datatypes.JSONMap `json:"article_meta"`
}

func (r UpdateArticleRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		changes["article_title"] = title
		changes["article_slug"] = Slugify(title)
	}
	if r.Content != nil {
		changes["article_content"] = strings.TrimSpace(*r.Content)
	}
	if r.Tags != nil {
		cleaned := make(pq.StringArray, 0, len(r.Tags))
		for _, t := range r.Tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				cleaned = append(cleaned, t)
			}
		}
		changes["article_tags"] = cleaned
	}
	if r.Meta != nil {
		changes["article_meta"] = r.Meta
	}
	return changes
}
