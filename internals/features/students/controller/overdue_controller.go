// file: internals/features/students/controller/overdue_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bimbelku_backend/internals/configs"
	overdueService "bimbelku_backend/internals/features/notifications/service"
	dto "bimbelku_backend/internals/features/students/dto"
	model "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
)

type OverdueStudentResponse struct {
	dto.StudentResponse
	Overdue              bool    `json:"overdue"`
	DaysSinceLastPayment *int    `json:"days_since_last_payment"`
	LastPaymentDate      *string `json:"last_payment_date,omitempty"`
	NeverPaid            bool    `json:"never_paid"`
}

// GET /api/students/overdue
// Daftar siswa yang perlu ditindaklanjuti: pembayaran terakhir minimal
// sehari yang lalu atau belum pernah bayar. Flag overdue menyala saat
// jeda melewati ambang hari (default 30).
func (ctl *StudentController) Overdue(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var students []model.StudentModel
	if err := ctl.DB.
		Preload("FeePayments").
		Where("student_user_id = ?", userID).
		Order("student_seat_number ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	threshold := configs.OverdueThresholdDays()
	now := time.Now().UTC()

	out := make([]OverdueStudentResponse, 0)
	for i := range students {
		s := &students[i]
		dates := make([]time.Time, 0, len(s.FeePayments))
		for _, p := range s.FeePayments {
			dates = append(dates, p.FeePaymentDate)
		}
		info := overdueService.Classify(dates, now, threshold)
		if !info.NeverPaid && info.DaysSinceLast < 1 {
			continue
		}

		item := OverdueStudentResponse{
			StudentResponse: dto.FromModelStudent(s),
			Overdue:         info.Status == overdueService.OverdueStatusOverdue,
			NeverPaid:       info.NeverPaid,
		}
		if !info.NeverPaid {
			days := info.DaysSinceLast
			item.DaysSinceLastPayment = &days
		}
		if info.LastPaymentDate != nil {
			d := info.LastPaymentDate.Format("2006-01-02")
			item.LastPaymentDate = &d
		}
		out = append(out, item)
	}

	return helper.JsonOK(c, "Daftar tunggakan berhasil diambil", fiber.Map{
		"threshold_days": threshold,
		"students":       out,
	})
}
