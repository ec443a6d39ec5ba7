// file: internals/features/students/controller/export_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"bimbelku_backend/internals/configs"
	overdueService "bimbelku_backend/internals/features/notifications/service"
	model "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
)

// GET /api/students/export
// Unduh workbook Excel: sheet Siswa (status tunggakan) + sheet Pembayaran.
func (ctl *StudentController) ExportExcel(c *fiber.Ctx) error {
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

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const studentSheet = "Siswa"
	const feeSheet = "Pembayaran"
	f.SetSheetName(f.GetSheetName(0), studentSheet)
	if _, err := f.NewSheet(feeSheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	setRow := func(sheet string, row int, values []any) {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	setRow(studentSheet, 1, []any{"Kursi", "Nama", "Kursus", "No. HP", "Alamat", "Tanggal Masuk", "Total Biaya", "Pembayaran Terakhir", "Status"})
	setRow(feeSheet, 1, []any{"Kursi", "Nama Siswa", "Tanggal", "Jumlah", "Status", "Keterangan"})

	threshold := configs.OverdueThresholdDays()
	now := time.Now().UTC()

	feeRow := 2
	for row, s := range students {
		dates := make([]time.Time, 0, len(s.FeePayments))
		for _, p := range s.FeePayments {
			dates = append(dates, p.FeePaymentDate)
		}
		info := overdueService.Classify(dates, now, threshold)

		lastPayment := "-"
		if info.LastPaymentDate != nil {
			lastPayment = info.LastPaymentDate.Format("2006-01-02")
		}
		status := "Lancar"
		if info.Status == overdueService.OverdueStatusOverdue {
			status = "Menunggak"
		}

		setRow(studentSheet, row+2, []any{
			s.StudentSeatNumber,
			s.StudentName,
			s.StudentCourseName,
			s.StudentMobile,
			s.StudentAddress,
			s.StudentJoinDate.Format("2006-01-02"),
			s.StudentTotalFees,
			lastPayment,
			status,
		})

		for _, p := range s.FeePayments {
			desc := ""
			if p.FeePaymentDescription != nil {
				desc = *p.FeePaymentDescription
			}
			setRow(feeSheet, feeRow, []any{
				s.StudentSeatNumber,
				s.StudentName,
				p.FeePaymentDate.Format("2006-01-02"),
				p.FeePaymentAmount,
				p.FeePaymentStatus,
				desc,
			})
			feeRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	filename := fmt.Sprintf("daftar_siswa_%s.xlsx", now.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
