package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/yayasan/articles/dto"
	m "pesantrenku_backend/internals/features/yayasan/articles/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type ArticleController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.ArticleModel]
	Validate *validator.Validate
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.ArticleModel](db),
		Validate: validator.New(),
	}
}

// GET /api/public/articles — hanya yang published
func (ctrl *ArticleController) ListPublished(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	pred := lifecycle.Predicate{"article_published": true}
	if tag := c.Query("tag"); tag != "" {
		// filter tag pakai operator array postgres
		total := int64(0)
		base := ctrl.DB.Model(&m.ArticleModel{}).
			Where("is_deleted = ? AND article_published = ? AND ? = ANY(article_tags)", false, true, tag)
		if err := base.Count(&total).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
		}
		var rows []m.ArticleModel
		if err := base.Order("article_published_at DESC NULLS LAST").
			Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
		}
		return helper.JsonList(c, "ok", rows,
			helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}

	var rows []m.ArticleModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("article_published_at DESC NULLS LAST").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/articles/:slug
func (ctrl *ArticleController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var article m.ArticleModel
	err := ctrl.Repo.FindOne(lifecycle.Predicate{
		"article_slug":      slug,
		"article_published": true,
	}, &article)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	return helper.JsonOK(c, "ok", article)
}

// POST /api/a/articles
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	article := body.ToModel(helper.ActorPtr(c))
	if article.ArticlePublished {
		now := time.Now()
		article.ArticlePublishedAt = &now
	}
	if err := ctrl.Repo.Create(&article); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug artikel sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan artikel")
	}
	return helper.JsonCreated(c, "Artikel dibuat", article)
}

// GET /api/a/articles — termasuk draft, dukung ?deleted=
func (ctrl *ArticleController) ListArticles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	pred := lifecycle.Predicate{}
	switch c.Query("deleted") {
	case "only":
		pred = lifecycle.OnlyDeleted(pred)
	case "all":
		pred = lifecycle.IncludeDeleted(pred)
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}

	var rows []m.ArticleModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/articles/:id
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	var body dto.UpdateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	changes := body.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	affected, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"article_id": id}), changes)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug artikel sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui artikel")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Artikel diperbarui", fiber.Map{"article_id": id})
}

// POST /api/a/articles/:id/publish
func (ctrl *ArticleController) PublishArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	now := time.Now()
	affected, err := ctrl.Repo.Updates(
		lifecycle.WithoutDeleted(lifecycle.Predicate{"article_id": id}),
		map[string]any{
			"article_published":    true,
			"article_published_at": now,
		},
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan artikel")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Artikel diterbitkan", fiber.Map{"article_id": id})
}

// DELETE /api/a/articles/:id — tombstone
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"article_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan atau sudah dihapus")
	}
	return helper.JsonDeleted(c, "Artikel dihapus", fiber.Map{"article_id": id})
}

// POST /api/a/articles/:id/restore
func (ctrl *ArticleController) RestoreArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	affected, err := ctrl.Repo.Restore(lifecycle.Predicate{"article_id": id})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan artikel")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel terhapus tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Artikel dipulihkan", fiber.Map{"article_id": id})
}
