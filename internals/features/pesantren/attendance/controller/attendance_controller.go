package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pesantren/attendance/dto"
	m "pesantrenku_backend/internals/features/pesantren/attendance/model"
	"pesantrenku_backend/internals/features/pesantren/attendance/service"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type AttendanceController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.AttendanceRecordModel]
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.AttendanceRecordModel](db),
		Validate: validator.New(),
	}
}

// POST /api/a/attendance
func (ctrl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	var body dto.CreateAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	record := body.ToModel(helper.ActorPtr(c))
	if err := ctrl.Repo.Create(&record); err != nil {
		log.Println("[ERROR] Gagal simpan absensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	summary, err := service.RecomputeSummary(ctrl.DB, record.AttendanceRecordSantriID)
	if err != nil {
		log.Println("[ERROR] Recompute rekap absensi gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Absensi tersimpan tetapi rekap gagal dihitung")
	}

	return helper.JsonCreated(c, "Absensi dicatat", fiber.Map{
		"record":  record,
		"summary": summary,
	})
}

// GET /api/u/attendance?santri_id=
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 30, 100)

	pred := lifecycle.Predicate{}
	if raw := c.Query("santri_id"); raw != "" {
		santriID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		pred["attendance_record_santri_id"] = santriID
	}
	if status := c.Query("status"); status != "" {
		pred["attendance_record_status"] = status
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var rows []m.AttendanceRecordModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("attendance_record_date DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/attendance/:id
func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	var body dto.UpdateAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing m.AttendanceRecordModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"attendance_record_id": id}, &existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	changes := body.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	if _, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"attendance_record_id": id}), changes); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui absensi")
	}

	summary, err := service.RecomputeSummary(ctrl.DB, existing.AttendanceRecordSantriID)
	if err != nil {
		log.Println("[ERROR] Recompute rekap absensi gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Absensi diperbarui tetapi rekap gagal dihitung")
	}

	return helper.JsonUpdated(c, "Absensi diperbarui", fiber.Map{
		"attendance_record_id": id,
		"summary":              summary,
	})
}

// DELETE /api/a/attendance/:id — tombstone + recompute
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	var existing m.AttendanceRecordModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"attendance_record_id": id}, &existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"attendance_record_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan atau sudah dihapus")
	}

	summary, err := service.RecomputeSummary(ctrl.DB, existing.AttendanceRecordSantriID)
	if err != nil {
		log.Println("[ERROR] Recompute rekap absensi gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Absensi dihapus tetapi rekap gagal dihitung")
	}

	return helper.JsonDeleted(c, "Absensi dihapus", fiber.Map{
		"attendance_record_id": id,
		"summary":              summary,
	})
}

// GET /api/u/attendance/summary/:santri_id
func (ctrl *AttendanceController) GetSummary(c *fiber.Ctx) error {
	santriID, err := uuid.Parse(c.Params("santri_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var summary m.AttendanceSummaryModel
	err = ctrl.DB.Where("attendance_summary_santri_id = ?", santriID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		summary, err = service.RecomputeSummary(ctrl.DB, santriID)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap absensi")
	}
	return helper.JsonOK(c, "ok", summary)
}
