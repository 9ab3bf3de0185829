package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/yayasan/articles/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// PublicArticleRoutes: baca artikel published tanpa login
func PublicArticleRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)

	articles := r.Group("/articles")
	articles.Get("/", ctrl.ListPublished)
	articles.Get("/:slug", ctrl.GetBySlug)
}

// AdminArticleRoutes: kelola artikel oleh admin
func AdminArticleRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)

	articles := r.Group("/articles",
		authMw.RequireRoles(constants.RoleErrorAdmin("artikel"), constants.AdminOnly...),
	)
	articles.Get("/", ctrl.ListArticles)
	articles.Post("/", ctrl.CreateArticle)
	articles.Patch("/:id", ctrl.UpdateArticle)
	articles.Post("/:id/publish", ctrl.PublishArticle)
	articles.Delete("/:id", ctrl.DeleteArticle)
	articles.Post("/:id/restore", ctrl.RestoreArticle)
}
