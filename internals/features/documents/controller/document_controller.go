// file: internals/features/documents/controller/document_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/documents/service"
	studentModel "bimbelku_backend/internals/features/students/model"
	authModel "bimbelku_backend/internals/features/users/auth/model"
	helper "bimbelku_backend/internals/helpers"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

func (ctl *DocumentController) ownedStudent(c *fiber.Ctx) (*studentModel.StudentModel, *authModel.UserModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, nil, err
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "student_id invalid")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student,
		"student_id = ? AND student_user_id = ?", studentID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Data siswa tidak ditemukan")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var user authModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil lembaga")
	}

	return &student, &user, nil
}

func sendPNG(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

/* ======= KUITANSI ======= */

// GET /api/students/:id/fees/:feeId/receipt
func (ctl *DocumentController) Receipt(c *fiber.Ctx) error {
	student, user, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}
	feeID, err := uuid.Parse(strings.TrimSpace(c.Params("feeId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "fee_payment_id invalid")
	}

	var fee studentModel.FeePaymentModel
	if err := ctl.DB.First(&fee,
		"fee_payment_id = ? AND fee_payment_student_id = ?", feeID, student.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	if err := ctl.DB.Preload("FeePayments").
		First(student, "student_id = ?", student.StudentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	desc := ""
	if fee.FeePaymentDescription != nil {
		desc = *fee.FeePaymentDescription
	}
	layout := service.BuildReceiptLayout(service.ReceiptData{
		CoachingName: user.CoachingName,
		StudentName:  student.StudentName,
		CourseName:   student.StudentCourseName,
		SeatNumber:   student.StudentSeatNumber,
		Amount:       fee.FeePaymentAmount,
		FeeDate:      fee.FeePaymentDate,
		Description:  desc,
		ReceiptID:    fee.FeePaymentID.String(),
		TotalFees:    student.StudentTotalFees,
		PaidTotal:    student.PaidTotal(),
	})

	data, err := service.Render(layout, "", service.Initials(student.StudentName))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kuitansi")
	}

	return sendPNG(c, layout.Filename, data)
}

/* ======= KARTU IDENTITAS ======= */

// GET /api/students/:id/idcard
func (ctl *DocumentController) IDCard(c *fiber.Ctx) error {
	student, user, err := ctl.ownedStudent(c)
	if err != nil {
		return err
	}

	photoURL := ""
	if student.StudentPhotoURL != nil {
		photoURL = *student.StudentPhotoURL
	}

	layout := service.BuildCardLayout(service.CardData{
		CoachingName: user.CoachingName,
		StudentName:  student.StudentName,
		CourseName:   student.StudentCourseName,
		Mobile:       student.StudentMobile,
		SeatNumber:   student.StudentSeatNumber,
		StudentID:    student.StudentID.String(),
		PhotoURL:     photoURL,
	})

	data, err := service.Render(layout, photoURL, service.Initials(student.StudentName))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kartu identitas")
	}

	return sendPNG(c, layout.Filename, data)
}
