package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	userModel "pesantrenku_backend/internals/features/users/user/model"
	"pesantrenku_backend/internals/features/yayasan/donations/model"
)

// HandleDonationStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var donation model.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		log.Println("[ERROR] Donasi tidak ditemukan:", err)
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	paidNow := false
	switch status {
	case "capture", "settlement":
		// idempotent: notifikasi ganda tidak menambah rollup dua kali
		if donation.DonationStatus != model.DonationStatusPaid {
			now := time.Now()
			donation.DonationStatus = model.DonationStatusPaid
			donation.DonationPaidAt = &now
			paidNow = true
		}
	case "expire":
		donation.DonationStatus = model.DonationStatusExpired
	case "cancel", "deny":
		donation.DonationStatus = model.DonationStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if method, ok := body["payment_type"].(string); ok && method != "" {
		donation.DonationPaymentMethod = &method
	}

	if err := db.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status donasi:", err)
		return err
	}

	// Rollup profil donatur: best-effort, gagal tidak membatalkan webhook
	if paidNow && donation.DonationUserID != nil {
		if err := applyDonorRollup(db, donation); err != nil {
			log.Println("[WARN] Rollup donatur gagal:", err)
		}
	}

	return nil
}

func applyDonorRollup(db *gorm.DB, donation model.DonationModel) error {
	return db.Model(&userModel.UserModel{}).
		Where("user_id = ?", *donation.DonationUserID).
		Updates(map[string]any{
			"donation_total":   gorm.Expr("donation_total + ?", donation.DonationAmount),
			"last_donation_at": donation.DonationPaidAt,
		}).Error
}
