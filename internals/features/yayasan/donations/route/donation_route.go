package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/yayasan/donations/controller"
	"pesantrenku_backend/internals/middlewares"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// PublicDonationRoutes: create donasi + webhook Midtrans (tanpa login)
func PublicDonationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationController(db)

	donations := r.Group("/donations")
	donations.Use(middlewares.DBMiddleware(db))
	donations.Post("/", ctrl.CreateDonation)
	donations.Post("/notification", ctrl.MidtransNotification)
	donations.Get("/notification", ctrl.MidtransWebhookPing)
}

// UserDonationRoutes: riwayat donasi user login
func UserDonationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationController(db)
	r.Get("/donations/me", ctrl.ListMyDonations)
}

// AdminDonationRoutes: monitoring & tombstone oleh admin
func AdminDonationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationController(db)

	donations := r.Group("/donations",
		authMw.RequireRoles(constants.RoleErrorAdmin("donasi"), constants.AdminOnly...),
	)
	donations.Get("/", ctrl.ListDonations)
	donations.Delete("/:id", ctrl.DeleteDonation)
}
