// file: internals/features/expenses/controller/expense_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bimbelku_backend/internals/features/expenses/dto"
	model "bimbelku_backend/internals/features/expenses/model"
	helper "bimbelku_backend/internals/helpers"
)

type ExpenseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ======= LIST ======= */

// GET /api/expenses?category=
func (ctl *ExpenseController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctl.DB.Where("expense_user_id = ?", userID)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if !model.IsValidCategory(category) {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori tidak dikenal")
		}
		q = q.Where("expense_category = ?", category)
	}

	var expenses []model.ExpenseModel
	if err := q.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	return helper.JsonOK(c, "Data pengeluaran berhasil diambil", dto.FromModelExpenses(expenses))
}

/* ======= CREATE ======= */

// POST /api/expenses
func (ctl *ExpenseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ExpenseCategory != "" && !model.IsValidCategory(strings.TrimSpace(req.ExpenseCategory)) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Kategori tidak dikenal")
	}

	expense, err := req.ToModel(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal pengeluaran tidak valid")
	}

	if err := ctl.DB.Create(expense).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}

	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", dto.FromModelExpense(expense))
}

/* ======= UPDATE ======= */

// PUT /api/expenses/:id
func (ctl *ExpenseController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expense_id invalid")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ExpenseCategory != "" && !model.IsValidCategory(strings.TrimSpace(req.ExpenseCategory)) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Kategori tidak dikenal")
	}

	var expense model.ExpenseModel
	if err := ctl.DB.First(&expense,
		"expense_id = ? AND expense_user_id = ?", id, userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Data pengeluaran tidak ditemukan")
	}

	if err := req.ApplyTo(&expense); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal pengeluaran tidak valid")
	}
	if err := ctl.DB.Save(&expense).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pengeluaran")
	}

	return helper.JsonUpdated(c, "Pengeluaran berhasil diperbarui", dto.FromModelExpense(&expense))
}

/* ======= DELETE ======= */

// DELETE /api/expenses/:id
func (ctl *ExpenseController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expense_id invalid")
	}

	res := ctl.DB.Where("expense_id = ? AND expense_user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data pengeluaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"expense_id": id})
}

/* ======= REKAP KATEGORI ======= */

type categoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// GET /api/expenses/categories
// Total pengeluaran per kategori; kategori tanpa transaksi tetap muncul nol.
func (ctl *ExpenseController) CategoryTotals(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []categoryTotal
	if err := ctl.DB.Model(&model.ExpenseModel{}).
		Select("expense_category AS category, COALESCE(SUM(expense_amount),0) AS total, COUNT(*) AS count").
		Where("expense_user_id = ?", userID).
		Group("expense_category").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap kategori")
	}

	byCategory := make(map[string]categoryTotal, len(rows))
	for _, r := range rows {
		byCategory[r.Category] = r
	}

	out := make([]categoryTotal, 0, len(model.ValidCategories))
	for _, cat := range model.ValidCategories {
		if r, ok := byCategory[cat]; ok {
			out = append(out, r)
		} else {
			out = append(out, categoryTotal{Category: cat})
		}
	}

	return helper.JsonOK(c, "Rekap kategori berhasil diambil", out)
}
