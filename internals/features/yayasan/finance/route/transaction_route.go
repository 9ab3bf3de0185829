package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/yayasan/finance/controller"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

// AdminFinanceRoutes: kas yayasan, hanya bendahara ke atas
func AdminFinanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	finance := r.Group("/finance",
		authMw.RequireRoles(constants.RoleErrorBendahara("kas yayasan"), constants.BendaharaAndAbove...),
	)
	finance.Post("/transactions", ctrl.CreateTransaction)
	finance.Get("/transactions", ctrl.ListTransactions)
	finance.Patch("/transactions/:id", ctrl.UpdateTransaction)
	finance.Delete("/transactions/:id", ctrl.DeleteTransaction)
	finance.Post("/transactions/:id/restore", ctrl.RestoreTransaction)
	finance.Get("/report", ctrl.MonthlyReport)
}
