// file: internals/features/analytics/controller/analytics_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "bimbelku_backend/internals/databases"
	"bimbelku_backend/internals/features/analytics/service"
	expenseModel "bimbelku_backend/internals/features/expenses/model"
	studentModel "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
)

const monthlyCacheTTL = 60 * time.Second

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

type monthValues struct {
	Fee           float64 `json:"fee"`
	Expense       float64 `json:"expense"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profit_percent"`
}

type monthlyReport struct {
	Months      []string               `json:"months"`
	ByMonth     map[string]monthValues `json:"by_month"`
	Totals      service.Totals         `json:"totals"`
	LatestMonth string                 `json:"latest_month"`
}

func (ctl *AnalyticsController) buildSummaries(userID uuid.UUID) ([]service.MonthlySummary, error) {
	var fees []studentModel.FeePaymentModel
	if err := ctl.DB.
		Where("fee_payment_user_id = ?", userID).
		Find(&fees).Error; err != nil {
		return nil, err
	}

	var expenses []expenseModel.ExpenseModel
	if err := ctl.DB.
		Where("expense_user_id = ?", userID).
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	feeEntries := make([]service.Entry, 0, len(fees))
	for _, f := range fees {
		feeEntries = append(feeEntries, service.Entry{Date: f.FeePaymentDate, Amount: f.FeePaymentAmount})
	}
	expenseEntries := make([]service.Entry, 0, len(expenses))
	for _, e := range expenses {
		expenseEntries = append(expenseEntries, service.Entry{Date: e.ExpenseDate, Amount: e.ExpenseAmount})
	}

	return service.Aggregate(feeEntries, expenseEntries), nil
}

func buildReport(months []service.MonthlySummary) monthlyReport {
	report := monthlyReport{
		Months:      make([]string, 0, len(months)),
		ByMonth:     make(map[string]monthValues, len(months)),
		Totals:      service.GrandTotals(months),
		LatestMonth: service.LatestMonth(months),
	}
	for _, m := range months {
		report.Months = append(report.Months, m.Month)
		report.ByMonth[m.Month] = monthValues{
			Fee:           m.FeeTotal,
			Expense:       m.ExpenseTotal,
			Profit:        m.Profit,
			ProfitPercent: m.ProfitPercent,
		}
	}
	return report
}

/* ======= REKAP BULANAN ======= */

// GET /api/analytics/monthly
// Hasil dicache di Redis 60 detik; cache mati = langsung hitung dari DB.
func (ctl *AnalyticsController) Monthly(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("analytics:monthly:%s", userID)
	if cached, err := database.CacheGet(c.Context(), cacheKey); err == nil && cached != "" {
		var report monthlyReport
		if json.Unmarshal([]byte(cached), &report) == nil {
			return helper.JsonOK(c, "Rekap bulanan berhasil diambil", report)
		}
	} else if err != nil && err != redis.Nil {
		// cache error bukan alasan gagal; lanjut hitung dari DB
	}

	months, err := ctl.buildSummaries(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap bulanan")
	}
	report := buildReport(months)

	if b, err := json.Marshal(report); err == nil {
		database.CacheSet(c.Context(), cacheKey, string(b), monthlyCacheTTL)
	}

	return helper.JsonOK(c, "Rekap bulanan berhasil diambil", report)
}
