// file: internals/features/students/controller/fee_payment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bimbelku_backend/internals/features/students/dto"
	model "bimbelku_backend/internals/features/students/model"
	"bimbelku_backend/internals/features/students/service"
	helper "bimbelku_backend/internals/helpers"
)

type FeePaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// Pastikan siswa milik user yang login
func (ctl *FeePaymentController) ownedStudent(c *fiber.Ctx) (*model.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "student_id invalid")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, "student_id = ? AND student_user_id = ?", studentID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Data siswa tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return &student, nil
}

/* ======= LIST ======= */

// GET /api/students/:id/fees
func (ctl *FeePaymentController) List(c *fiber.Ctx) error {
	student, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}

	var fees []model.FeePaymentModel
	if err := ctl.DB.
		Where("fee_payment_student_id = ?", student.StudentID).
		Order("fee_payment_date DESC").
		Find(&fees).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat pembayaran")
	}

	return helper.JsonOK(c, "Riwayat pembayaran berhasil diambil", dto.FromModelFeePayments(fees))
}

/* ======= CREATE ======= */

// POST /api/students/:id/fees
func (ctl *FeePaymentController) Create(c *fiber.Ctx) error {
	student, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fee, err := req.ToModel(student.StudentID, student.StudentUserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal pembayaran tidak valid")
	}

	if err := ctl.DB.Create(fee).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", dto.FromModelFeePayment(fee))
}

/* ======= UPDATE ======= */

// PUT /api/students/:id/fees/:feeId
func (ctl *FeePaymentController) Update(c *fiber.Ctx) error {
	student, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}
	feeID, err := uuid.Parse(strings.TrimSpace(c.Params("feeId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "fee_payment_id invalid")
	}

	var req dto.UpdateFeePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var fee model.FeePaymentModel
	if err := ctl.DB.First(&fee,
		"fee_payment_id = ? AND fee_payment_student_id = ?", feeID, student.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	if err := req.ApplyTo(&fee); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal pembayaran tidak valid")
	}
	if err := ctl.DB.Save(&fee).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pembayaran")
	}

	return helper.JsonUpdated(c, "Pembayaran berhasil diperbarui", dto.FromModelFeePayment(&fee))
}

/* ======= DELETE ======= */

// DELETE /api/students/:id/fees/:feeId
func (ctl *FeePaymentController) Delete(c *fiber.Ctx) error {
	student, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}
	feeID, err := uuid.Parse(strings.TrimSpace(c.Params("feeId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "fee_payment_id invalid")
	}

	res := ctl.DB.Where("fee_payment_id = ? AND fee_payment_student_id = ?", feeID, student.StudentID).
		Delete(&model.FeePaymentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pembayaran")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data pembayaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pembayaran berhasil dihapus", fiber.Map{"fee_payment_id": feeID})
}

/* ======= PAYMENT LINK (Midtrans Snap) ======= */

// POST /api/students/:id/fees/:feeId/payment-link
func (ctl *FeePaymentController) CreatePaymentLink(c *fiber.Ctx) error {
	student, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}
	feeID, err := uuid.Parse(strings.TrimSpace(c.Params("feeId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "fee_payment_id invalid")
	}

	var fee model.FeePaymentModel
	if err := ctl.DB.First(&fee,
		"fee_payment_id = ? AND fee_payment_student_id = ?", feeID, student.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	if fee.FeePaymentStatus == model.FeeStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Pembayaran sudah lunas")
	}

	url, orderID, err := service.CreateSnapPaymentLink(student, &fee)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat link pembayaran")
	}

	fee.FeePaymentOrderID = &orderID
	fee.FeePaymentPaymentURL = &url
	if err := ctl.DB.Save(&fee).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan link pembayaran")
	}

	return helper.JsonOK(c, "Link pembayaran berhasil dibuat", fiber.Map{
		"fee_payment_id": fee.FeePaymentID,
		"order_id":       orderID,
		"payment_url":    url,
	})
}
