package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "pesantrenku_backend/internals/features/pesantren/attendance/route"
	gradeRoute "pesantrenku_backend/internals/features/pesantren/grades/route"
	hafalanRoute "pesantrenku_backend/internals/features/pesantren/hafalan/route"
	santriRoute "pesantrenku_backend/internals/features/pesantren/santri/route"
	authRoute "pesantrenku_backend/internals/features/users/auth/route"
	userRoute "pesantrenku_backend/internals/features/users/user/route"
	articleRoute "pesantrenku_backend/internals/features/yayasan/articles/route"
	donationRoute "pesantrenku_backend/internals/features/yayasan/donations/route"
	financeRoute "pesantrenku_backend/internals/features/yayasan/finance/route"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware(db))

	// ADMIN → JWT + role check per-route
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserUserRoutes(private, db)
	userRoute.AdminUserRoutes(admin, db)

	log.Println("[INFO] Mounting Santri routes...")
	santriRoute.UserSantriRoutes(private, db)
	santriRoute.AdminSantriRoutes(admin, db)

	log.Println("[INFO] Mounting Hafalan routes...")
	hafalanRoute.PublicHafalanRoutes(public, db)
	hafalanRoute.UserHafalanRoutes(private, db)
	hafalanRoute.AdminHafalanRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.UserAttendanceRoutes(private, db)
	attendanceRoute.AdminAttendanceRoutes(admin, db)

	log.Println("[INFO] Mounting Grade routes...")
	gradeRoute.UserGradeRoutes(private, db)
	gradeRoute.AdminGradeRoutes(admin, db)

	log.Println("[INFO] Mounting Donation routes...")
	donationRoute.PublicDonationRoutes(public, db)
	donationRoute.UserDonationRoutes(private, db)
	donationRoute.AdminDonationRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	financeRoute.AdminFinanceRoutes(admin, db)

	log.Println("[INFO] Mounting Article routes...")
	articleRoute.PublicArticleRoutes(public, db)
	articleRoute.AdminArticleRoutes(admin, db)
}
