package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/user/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// UserUserRoutes: profil milik user yang login
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctrl.GetMe)
	users.Patch("/me", ctrl.UpdateMe)
}

// AdminUserRoutes: manajemen user oleh admin
func AdminUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := r.Group("/users",
		authMw.RequireRoles(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...),
	)
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Delete("/:id", ctrl.DeleteUser)
	users.Post("/:id/restore", ctrl.RestoreUser)
}
