package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/yayasan/finance/dto"
	m "pesantrenku_backend/internals/features/yayasan/finance/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type TransactionController struct {
	DB       *gorm.DB
	Repo     lifecycle.Repository[m.TransactionModel]
	Validate *validator.Validate
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{
		DB:       db,
		Repo:     lifecycle.NewRepository[m.TransactionModel](db),
		Validate: validator.New(),
	}
}

// POST /api/a/finance/transactions
func (ctrl *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	var body dto.CreateTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	trx := body.ToModel(helper.ActorPtr(c))
	if err := ctrl.Repo.Create(&trx); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan transaksi")
	}
	return helper.JsonCreated(c, "Transaksi dicatat", trx)
}

// GET /api/a/finance/transactions?type=&category=&deleted=
func (ctrl *TransactionController) ListTransactions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	pred := lifecycle.Predicate{}
	if t := c.Query("type"); t != "" {
		pred["transaction_type"] = t
	}
	if cat := c.Query("category"); cat != "" {
		pred["transaction_category"] = cat
	}
	switch c.Query("deleted") {
	case "only":
		pred = lifecycle.OnlyDeleted(pred)
	case "all":
		pred = lifecycle.IncludeDeleted(pred)
	}

	total, err := ctrl.Repo.Count(pred)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung transaksi")
	}

	var rows []m.TransactionModel
	if err := ctrl.Repo.FindMany(pred, &rows, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("transaction_date DESC").Offset(paging.Offset).Limit(paging.Limit)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/finance/transactions/:id
func (ctrl *TransactionController) UpdateTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	var body dto.UpdateTransactionRequest
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

	affected, err := ctrl.Repo.Updates(lifecycle.WithoutDeleted(lifecycle.Predicate{"transaction_id": id}), changes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui transaksi")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Transaksi diperbarui", fiber.Map{"transaction_id": id})
}

// DELETE /api/a/finance/transactions/:id — tombstone
func (ctrl *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	affected, err := ctrl.Repo.Delete(lifecycle.Predicate{"transaction_id": id}, helper.ActorPtr(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus transaksi")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan atau sudah dihapus")
	}
	return helper.JsonDeleted(c, "Transaksi dihapus", fiber.Map{"transaction_id": id})
}

// POST /api/a/finance/transactions/:id/restore
func (ctrl *TransactionController) RestoreTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	affected, err := ctrl.Repo.Restore(lifecycle.Predicate{"transaction_id": id})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan transaksi")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi terhapus tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Transaksi dipulihkan", fiber.Map{"transaction_id": id})
}

// GET /api/a/finance/report?months=6 — rollup bulanan income/expense
func (ctrl *TransactionController) MonthlyReport(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	if months < 1 {
		months = 1
	}
	if months > 36 {
		months = 36
	}

	type rawRow struct {
		Month        string
		TotalIncome  int64
		TotalExpense int64
		Entries      int64
	}
	var raw []rawRow
	if err := ctrl.DB.Model(&m.TransactionModel{}).
		Select(`to_char(transaction_date, 'YYYY-MM') AS month,
			COALESCE(SUM(transaction_amount) FILTER (WHERE transaction_type = 'income'), 0) AS total_income,
			COALESCE(SUM(transaction_amount) FILTER (WHERE transaction_type = 'expense'), 0) AS total_expense,
			COUNT(*) AS entries`).
		Where("is_deleted = ?", false).
		Group("month").
		Order("month DESC").
		Limit(months).
		Scan(&raw).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan keuangan")
	}

	report := make([]dto.MonthlyReport, 0, len(raw))
	for _, r := range raw {
		report = append(report, dto.MonthlyReport{
			Month:        r.Month,
			TotalIncome:  r.TotalIncome,
			TotalExpense: r.TotalExpense,
			Balance:      r.TotalIncome - r.TotalExpense,
			Entries:      r.Entries,
		})
	}
	return helper.JsonOK(c, "ok", report)
}
