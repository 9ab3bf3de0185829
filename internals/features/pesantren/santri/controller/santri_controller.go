package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pesantren/santri/dto"
	m "pesantrenku_backend/internals/features/pesantren/santri/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type SantriController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.SantriModel]
	Validate *validator.Validate
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.SantriModel](db),
		Validate: validator.New(),
	}
}

// POST /api/a/santri
func (ctrl *SantriController) CreateSantri(c *fiber.Ctx) error {
	var body dto.CreateSantriRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	santri := body.ToModel()
	if err := ctrl.Repo.Create(&santri); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data santri")
	}
	return helper.JsonCreated(c, "Santri berhasil didaftarkan", santri)
}

// GET /api/u/santri
func (ctrl *SantriController) ListSantri(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{}
	if kelas := c.Query("kelas"); kelas != "" {
		pred["santri_kelas"] = kelas
	}
	switch c.Query("deleted") {
	case "only":
		pred = lifecycle.OnlyDeleted(pred)
	case "all":
		pred = lifecycle.IncludeDeleted(pred)
	}
	// tanpa query deleted: biarkan repository menyuntik default is_deleted=false

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung santri")
	}

	var rows []m.SantriModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("santri_name ASC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar santri")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/santri/:id
func (ctrl *SantriController) GetSantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var santri m.SantriModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"santri_id": id}, &santri); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonOK(c, "ok", santri)
}

// PATCH /api/a/santri/:id
func (ctrl *SantriController) UpdateSantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var body dto.UpdateSantriRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	changes := body.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	affected, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"santri_id": id}), changes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data santri")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	var santri m.SantriModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"santri_id": id}, &santri); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonUpdated(c, "Data santri diperbarui", santri)
}

// DELETE /api/a/santri/:id — tombstone
func (ctrl *SantriController) DeleteSantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"santri_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan atau sudah dihapus")
	}
	return helper.JsonDeleted(c, "Santri berhasil dihapus", fiber.Map{"santri_id": id})
}

// POST /api/a/santri/:id/restore
func (ctrl *SantriController) RestoreSantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	affected, err := ctrl.Repo.Restore(lifecycle.Predicate{"santri_id": id})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan santri")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan di daftar terhapus")
	}
	return helper.JsonUpdated(c, "Santri berhasil dipulihkan", fiber.Map{"santri_id": id})
}
