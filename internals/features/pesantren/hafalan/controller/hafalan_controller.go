package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/hafalan/dto"
	m "pesantrenku_backend/internals/features/pesantren/hafalan/model"
	"pesantrenku_backend/internals/features/pesantren/hafalan/service"
	"pesantrenku_backend/internals/features/pesantren/quran"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type HafalanController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.HafalanRecordModel]
	Validate *validator.Validate
}

func NewHafalanController(db *gorm.DB) *HafalanController {
	return &HafalanController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.HafalanRecordModel](db),
		Validate: validator.New(),
	}
}

/* =========================================================
   Setoran CRUD — tiap mutasi memicu recompute sinkron
   ========================================================= */

// POST /api/a/hafalan/setoran
func (ctrl *HafalanController) CreateSetoran(c *fiber.Ctx) error {
	var body dto.CreateSetoranRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	// validasi range ditolak sebelum langkah tombstone/recompute mana pun
	if err := body.ValidateRange(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	record := body.ToModel(helper.ActorPtr(c))
	if err := ctrl.Repo.Create(&record); err != nil {
		log.Println("[ERROR] Gagal simpan setoran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setoran")
	}

	summary, err := service.RecomputeProgress(ctrl.DB, record.HafalanRecordSantriID)
	if err != nil {
		// setoran sudah tersimpan; recompute idempotent → caller aman retry
		log.Println("[ERROR] Recompute progress gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Setoran tersimpan tetapi rekap gagal dihitung")
	}

	return helper.JsonCreated(c, "Setoran berhasil dicatat", fiber.Map{
		"record":   record,
		"progress": summary,
	})
}

// GET /api/u/hafalan/setoran?santri_id=&deleted=
func (ctrl *HafalanController) ListSetoran(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{}
	if raw := c.Query("santri_id"); raw != "" {
		santriID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		pred["hafalan_record_santri_id"] = santriID
	}
	switch c.Query("deleted") {
	case "only":
		pred = lifecycle.OnlyDeleted(pred)
	case "all":
		pred = lifecycle.IncludeDeleted(pred)
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung setoran")
	}

	var rows []m.HafalanRecordModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("hafalan_record_date DESC, created_at DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar setoran")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/hafalan/setoran/:id
func (ctrl *HafalanController) GetSetoran(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID setoran tidak valid")
	}

	var record m.HafalanRecordModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"hafalan_record_id": id}, &record); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setoran")
	}
	return helper.JsonOK(c, "ok", record)
}

// PATCH /api/a/hafalan/setoran/:id
func (ctrl *HafalanController) UpdateSetoran(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID setoran tidak valid")
	}

	var body dto.UpdateSetoranRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing m.HafalanRecordModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"hafalan_record_id": id}, &existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setoran")
	}
	if err := ctrl.requireOwnership(c, existing); err != nil {
		return err
	}
	if err := body.ValidateRangeAgainst(existing); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	changes := body.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	if _, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"hafalan_record_id": id}), changes); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui setoran")
	}

	summary, err := service.RecomputeProgress(ctrl.DB, existing.HafalanRecordSantriID)
	if err != nil {
		log.Println("[ERROR] Recompute progress gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Setoran diperbarui tetapi rekap gagal dihitung")
	}

	return helper.JsonUpdated(c, "Setoran diperbarui", fiber.Map{
		"hafalan_record_id": id,
		"progress":          summary,
	})
}

// DELETE /api/a/hafalan/setoran/:id — tombstone + recompute
func (ctrl *HafalanController) DeleteSetoran(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID setoran tidak valid")
	}

	var existing m.HafalanRecordModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"hafalan_record_id": id}, &existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setoran")
	}
	if err := ctrl.requireOwnership(c, existing); err != nil {
		return err
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"hafalan_record_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus setoran")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan atau sudah dihapus")
	}

	summary, err := service.RecomputeProgress(ctrl.DB, existing.HafalanRecordSantriID)
	if err != nil {
		log.Println("[ERROR] Recompute progress gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Setoran dihapus tetapi rekap gagal dihitung")
	}

	return helper.JsonDeleted(c, "Setoran dihapus", fiber.Map{
		"hafalan_record_id": id,
		"progress":          summary,
	})
}

// requireOwnership: teacher hanya boleh mengubah setoran yang dia catat;
// admin bebas. Dicek DI ATAS layer repository, bukan di dalamnya.
func (ctrl *HafalanController) requireOwnership(c *fiber.Ctx, record m.HafalanRecordModel) error {
	role := helper.GetUserRole(c)
	if role == constants.RoleAdmin {
		return nil
	}
	actor := helper.GetUserUUID(c)
	if record.HafalanRecordTeacherID != nil && *record.HafalanRecordTeacherID == actor {
		return nil
	}
	return helper.JsonError(c, fiber.StatusForbidden, "Setoran ini dicatat oleh teacher lain")
}

/* =========================================================
   Progress & referensi
   ========================================================= */

// GET /api/u/hafalan/progress/:santri_id
// Baris ringkasan yang belum ada dibuat on-the-fly (recompute idempotent;
// santri tanpa setoran dapat baris serba nol).
func (ctrl *HafalanController) GetProgress(c *fiber.Ctx) error {
	santriID, err := uuid.Parse(c.Params("santri_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var summary m.HafalanProgressModel
	err = ctrl.DB.Where("hafalan_progress_santri_id = ?", santriID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		summary, err = service.RecomputeProgress(ctrl.DB, santriID)
	}
	if err != nil {
		log.Println("[ERROR] Gagal ambil progress:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil progress hafalan")
	}
	return helper.JsonOK(c, "ok", summary)
}

// GET /api/u/hafalan/ranking?limit=
func (ctrl *HafalanController) Ranking(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var rows []m.HafalanProgressModel
	if err := ctrl.DB.
		Order("total_ayat DESC, surah_mastered DESC, avg_quality DESC").
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ranking")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/hafalan/surah — referensi metadata surah untuk form setoran
func (ctrl *HafalanController) ListSurah(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", quran.AllSurahs())
}
