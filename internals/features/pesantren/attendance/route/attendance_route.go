package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/attendance/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

func UserAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/", ctrl.ListAttendance)
	attendance.Get("/summary/:santri_id", ctrl.GetSummary)
}

func AdminAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance",
		authMw.RequireRoles(constants.RoleErrorTeacher("absensi"), constants.TeacherAndAbove...),
	)
	attendance.Post("/", ctrl.CreateAttendance)
	attendance.Patch("/:id", ctrl.UpdateAttendance)
	attendance.Delete("/:id", ctrl.DeleteAttendance)
}
