package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/users/user/dto"
	m "pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type UserController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.UserModel]
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.UserModel](db),
		Validate: validator.New(),
	}
}

// GET /api/u/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak dikenali")
	}

	var user m.UserModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"user_id": userID}, &user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(user))
}

// PATCH /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak dikenali")
	}

	var body dto.UpdateUserRequest
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

	if _, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"user_id": userID}), changes); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	var user m.UserModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"user_id": userID}, &user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUserResponse(user))
}

// GET /api/a/users
// ?deleted=only → list tombstone (trash), ?deleted=all → semua, default exclude
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{}
	if role := c.Query("role"); role != "" {
		pred["role"] = role
	}
	switch c.Query("deleted") {
	case "only":
		pred = lifecycle.OnlyDeleted(pred)
	case "all":
		pred = lifecycle.IncludeDeleted(pred)
	default:
		pred = lifecycle.WithoutDeleted(pred)
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []m.UserModel
	if err := ctrl.Repo.FindMany(pred, &users, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	return helper.JsonList(c, "ok", dto.ToUserResponses(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user m.UserModel
	if err := ctrl.Repo.FindOne(lifecycle.Predicate{"user_id": id}, &user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(user))
}

// DELETE /api/a/users/:id — tombstone, bukan hard delete
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"user_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan atau sudah dihapus")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}

// POST /api/a/users/:id/restore
func (ctrl *UserController) RestoreUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	affected, err := ctrl.Repo.Restore(lifecycle.Predicate{"user_id": id})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan user")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan di daftar terhapus")
	}
	return helper.JsonUpdated(c, "User berhasil dipulihkan", fiber.Map{"user_id": id})
}
