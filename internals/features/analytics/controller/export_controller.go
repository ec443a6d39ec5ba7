// file: internals/features/analytics/controller/export_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"bimbelku_backend/internals/features/analytics/service"
	expenseModel "bimbelku_backend/internals/features/expenses/model"
	helper "bimbelku_backend/internals/helpers"
)

// GET /api/analytics/export?year=
// Unduh rekap bulanan + rincian kategori pengeluaran sebagai file Excel.
// Tanpa parameter year seluruh bulan ikut diekspor.
func (ctl *AnalyticsController) ExportExcel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	year := 0
	if q := strings.TrimSpace(c.Query("year")); q != "" {
		y, err := strconv.Atoi(q)
		if err != nil || y < 2000 || y > 2100 {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter year tidak valid")
		}
		year = y
	}

	months, err := ctl.buildSummaries(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap bulanan")
	}
	if year > 0 {
		prefix := fmt.Sprintf("%04d-", year)
		filtered := months[:0]
		for _, m := range months {
			if strings.HasPrefix(m.Month, prefix) {
				filtered = append(filtered, m)
			}
		}
		months = filtered
	}
	totals := service.GrandTotals(months)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const monthSheet = "Rekap Bulanan"
	const categorySheet = "Kategori Pengeluaran"
	f.SetSheetName(f.GetSheetName(0), monthSheet)
	if _, err := f.NewSheet(categorySheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	setRow := func(sheet string, row int, values []any) {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	setRow(monthSheet, 1, []any{"Bulan", "Pemasukan", "Pengeluaran", "Laba", "Margin (%)"})
	for row, m := range months {
		setRow(monthSheet, row+2, []any{m.Month, m.FeeTotal, m.ExpenseTotal, m.Profit, m.ProfitPercent})
	}
	setRow(monthSheet, len(months)+2, []any{"TOTAL", totals.FeeTotal, totals.ExpenseTotal, totals.Profit, totals.ProfitPercent})

	// Rincian kategori pengeluaran, ikut terfilter tahun bila diminta
	catQuery := ctl.DB.Model(&expenseModel.ExpenseModel{}).
		Select("expense_category AS category, COALESCE(SUM(expense_amount),0) AS total").
		Where("expense_user_id = ?", userID).
		Group("expense_category")
	if year > 0 {
		catQuery = catQuery.Where("EXTRACT(YEAR FROM expense_date) = ?", year)
	}
	var categoryRows []struct {
		Category string
		Total    float64
	}
	if err := catQuery.Scan(&categoryRows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap kategori")
	}
	byCategory := make(map[string]float64, len(categoryRows))
	for _, r := range categoryRows {
		byCategory[r.Category] = r.Total
	}

	setRow(categorySheet, 1, []any{"Kategori", "Total"})
	for i, cat := range expenseModel.ValidCategories {
		setRow(categorySheet, i+2, []any{cat, byCategory[cat]})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	filename := fmt.Sprintf("rekap_bulanan_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
