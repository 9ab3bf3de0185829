package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/yayasan/donations/dto"
	m "pesantrenku_backend/internals/features/yayasan/donations/model"
	"pesantrenku_backend/internals/features/yayasan/donations/service"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type DonationController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.DonationModel]
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.DonationModel](db),
		Validate: validator.New(),
	}
}

// POST /api/public/donations — donasi tanpa login pun boleh
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())
	donation := body.ToModel(orderID, helper.ActorPtr(c))
	if err := ctrl.Repo.Create(&donation); err != nil {
		log.Println("[ERROR] Gagal menyimpan donasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	email := ""
	if body.DonationEmail != nil {
		email = *body.DonationEmail
	}
	token, redirectURL, err := service.GenerateSnapToken(donation, body.DonationName, email)
	if err != nil {
		log.Println("[ERROR] GenerateSnapToken gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	if _, err := ctrl.Repo.Updates(
		lifecycle.Predicate{"donation_id": donation.DonationID},
		map[string]any{"donation_payment_token": token},
	); err != nil {
		log.Println("[ERROR] Gagal memperbarui token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui token pembayaran")
	}

	return helper.JsonCreated(c, "Donasi dibuat", dto.DonationCreatedResponse{
		DonationID:  donation.DonationID,
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// POST /api/public/donations/notification — webhook Midtrans
func (ctrl *DonationController) MidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	db, ok := c.Locals("db").(*gorm.DB)
	if !ok {
		db = ctrl.DB
	}
	if err := service.HandleDonationStatusWebhook(db, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}
	return helper.JsonOK(c, "OK", nil)
}

// GET /api/public/donations/notification — ping dari dashboard Midtrans
func (ctrl *DonationController) MidtransWebhookPing(c *fiber.Ctx) error {
	log.Println("✅ Midtrans ping (GET) received")
	return c.Status(fiber.StatusOK).SendString("OK")
}

// GET /api/u/donations/me — riwayat donasi user login
func (ctrl *DonationController) ListMyDonations(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan di token")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{"donation_user_id": userID}
	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var rows []m.DonationModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	out := make([]dto.DonationResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.ToDonationResponse(d))
	}
	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/donations — daftar donasi untuk admin, dukung ?status= & ?deleted=
func (ctrl *DonationController) ListDonations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{}
	if status := c.Query("status"); status != "" {
		pred["donation_status"] = status
	}
	switch c.Query("deleted") {
	case "only":
		pred = lifecycle.OnlyDeleted(pred)
	case "all":
		pred = lifecycle.IncludeDeleted(pred)
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var rows []m.DonationModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/donations/:id — tombstone
func (ctrl *DonationController) DeleteDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID donasi tidak valid")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"donation_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus donasi")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan atau sudah dihapus")
	}
	return helper.JsonDeleted(c, "Donasi dihapus", fiber.Map{"donation_id": id})
}
