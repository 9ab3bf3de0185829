package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menjadwalkan pembersihan token kedaluwarsa
// tiap hari jam 02:00 WIB. TTL dari env (default 7 hari).
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc("0 2 * * *", func() {
		cleanupOnce(db, ttlDays)
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal daftar jadwal: %v", err)
		return c
	}
	c.Start()
	log.Println("[CLEANUP] Scheduler pembersihan token_blacklist aktif (02:00 WIB)")
	return c
}

func cleanupOnce(db *gorm.DB, ttlDays int) {
	log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	// batch 100 supaya tidak mengunci tabel lama-lama
	for {
		var expiredTokens []model.TokenBlacklist
		if err := db.
			Where("expired_at < ?", deleteBefore).
			Limit(100).
			Find(&expiredTokens).Error; err != nil {
			log.Printf("[CLEANUP ERROR] Gagal ambil token kadaluarsa: %v", err)
			return
		}
		if len(expiredTokens) == 0 {
			log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			return
		}
		if err := db.Delete(&expiredTokens).Error; err != nil {
			log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
			return
		}
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", len(expiredTokens))
		if len(expiredTokens) < 100 {
			return
		}
	}
}
