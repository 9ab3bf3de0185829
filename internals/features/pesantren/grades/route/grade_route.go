package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/grades/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// UserGradeRoutes: baca nilai & rekap
func UserGradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGradeController(db)

	grades := r.Group("/grades")
	grades.Get("/", ctrl.ListGrades)
	grades.Get("/rekap/:santri_id", ctrl.GetRekap)
}

// AdminGradeRoutes: mutasi nilai oleh teacher/admin
func AdminGradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGradeController(db)

	grades := r.Group("/grades",
		authMw.RequireRoles(constants.RoleErrorTeacher("nilai santri"), constants.TeacherAndAbove...),
	)
	grades.Post("/", ctrl.CreateGrade)
	grades.Patch("/:id", ctrl.UpdateGrade)
	grades.Delete("/:id", ctrl.DeleteGrade)
}
