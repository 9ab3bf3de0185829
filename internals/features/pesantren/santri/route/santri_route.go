package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/santri/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// UserSantriRoutes: read-only untuk user login
func UserSantriRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSantriController(db)

	santri := r.Group("/santri")
	santri.Get("/", ctrl.ListSantri)
	santri.Get("/:id", ctrl.GetSantri)
}

// AdminSantriRoutes: mutasi oleh admin/teacher
func AdminSantriRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSantriController(db)

	santri := r.Group("/santri",
		authMw.RequireRoles(constants.RoleErrorTeacher("data santri"), constants.TeacherAndAbove...),
	)
	santri.Post("/", ctrl.CreateSantri)
	santri.Patch("/:id", ctrl.UpdateSantri)
	santri.Delete("/:id", ctrl.DeleteSantri)
	santri.Post("/:id/restore", ctrl.RestoreSantri)
}
