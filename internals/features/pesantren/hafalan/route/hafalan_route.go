package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/hafalan/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// PublicHafalanRoutes: referensi surah tanpa login
func PublicHafalanRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHafalanController(db)
	r.Get("/hafalan/surah", ctrl.ListSurah)
}

// UserHafalanRoutes: baca setoran & progress
func UserHafalanRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHafalanController(db)

	hafalan := r.Group("/hafalan")
	hafalan.Get("/setoran", ctrl.ListSetoran)
	hafalan.Get("/setoran/:id", ctrl.GetSetoran)
	hafalan.Get("/progress/:santri_id", ctrl.GetProgress)
	hafalan.Get("/ranking", ctrl.Ranking)
}

// AdminHafalanRoutes: mutasi setoran oleh teacher/admin
func AdminHafalanRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHafalanController(db)

	hafalan := r.Group("/hafalan",
		authMw.RequireRoles(constants.RoleErrorTeacher("setoran hafalan"), constants.TeacherAndAbove...),
	)
	hafalan.Post("/setoran", ctrl.CreateSetoran)
	hafalan.Patch("/setoran/:id", ctrl.UpdateSetoran)
	hafalan.Delete("/setoran/:id", ctrl.DeleteSetoran)
}
