package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pesantren/grades/dto"
	m "pesantrenku_backend/internals/features/pesantren/grades/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type GradeController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.GradeRecordModel]
	Validate *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.GradeRecordModel](db),
		Validate: validator.New(),
	}
}

// POST /api/a/grades
func (ctrl *GradeController) CreateGrade(c *fiber.Ctx) error {
	var body dto.CreateGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	record := body.ToModel(helper.ActorPtr(c))
	if err := ctrl.Repo.Create(&record); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonCreated(c, "Nilai dicatat", record)
}

// GET /api/u/grades?santri_id=&term=
func (ctrl *GradeController) ListGrades(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{}
	if raw := c.Query("santri_id"); raw != "" {
		santriID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		pred["grade_record_santri_id"] = santriID
	}
	if term := c.Query("term"); term != "" {
		pred["grade_record_term"] = term
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung nilai")
	}

	var rows []m.GradeRecordModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/grades/:id
func (ctrl *GradeController) UpdateGrade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID nilai tidak valid")
	}

	var body dto.UpdateGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	changes := body.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	affected, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"grade_record_id": id}), changes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Nilai diperbarui", fiber.Map{"grade_record_id": id})
}

// DELETE /api/a/grades/:id — tombstone
func (ctrl *GradeController) DeleteGrade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID nilai tidak valid")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"grade_record_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan atau sudah dihapus")
	}
	return helper.JsonDeleted(c, "Nilai dihapus", fiber.Map{"grade_record_id": id})
}

// GET /api/u/grades/rekap/:santri_id — rata-rata per mapel (exclude tombstone)
func (ctrl *GradeController) GetRekap(c *fiber.Ctx) error {
	santriID, err := uuid.Parse(c.Params("santri_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var rows []dto.SubjectAverage
	if err := ctrl.DB.Model(&m.GradeRecordModel{}).
		Select("grade_record_subject AS subject, AVG(grade_record_score) AS avg_score, COUNT(*) AS sessions").
		Where("grade_record_santri_id = ? AND is_deleted = ?", santriID, false).
		Group("grade_record_subject").
		Order("subject ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap nilai")
	}

	return helper.JsonOK(c, "ok", rows)
}
