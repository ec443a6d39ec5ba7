// file: internals/features/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "bimbelku_backend/internals/features/users/auth/model"
	dto "bimbelku_backend/internals/features/students/dto"
	model "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateSeatErr(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

func (ctl *StudentController) totalSeatsFor(userID uuid.UUID) (int, error) {
	var user authModel.UserModel
	if err := ctl.DB.Select("total_seats").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.TotalSeats, nil
}

/* =======================
   LIST & DETAIL
======================= */

// GET /api/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var students []model.StudentModel
	if err := ctl.DB.
		Preload("FeePayments", func(db *gorm.DB) *gorm.DB {
			return db.Order("fee_payment_date DESC")
		}).
		Where("student_user_id = ?", userID).
		Order("student_seat_number ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonOK(c, "Data siswa berhasil diambil", dto.FromModelStudents(students))
}

// GET /api/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id invalid")
	}

	var student model.StudentModel
	if err := ctl.DB.
		Preload("FeePayments", func(db *gorm.DB) *gorm.DB {
			return db.Order("fee_payment_date DESC")
		}).
		First(&student, "student_id = ? AND student_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonOK(c, "Data siswa berhasil diambil", dto.FromModelStudent(&student))
}

/* =======================
   CREATE (multipart, foto opsional)
======================= */

// POST /api/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	totalSeats, err := ctl.totalSeatsFor(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca kapasitas kursi")
	}
	if req.StudentSeatNumber > totalSeats {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Nomor kursi melebihi kapasitas")
	}

	student, err := req.ToModel(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal masuk tidak valid")
	}

	// Foto opsional
	if fileHeader, err := c.FormFile("student_photo"); err == nil && fileHeader != nil {
		url, err := helper.SavePhotoWebP("students", fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
		}
		student.StudentPhotoURL = &url
	}

	if err := ctl.DB.Create(student).Error; err != nil {
		if isDuplicateSeatErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Nomor kursi sudah terisi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.FromModelStudent(student))
}

/* =======================
   UPDATE (multipart, bisa pindah kursi)
======================= */

// PUT /api/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id invalid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var student model.StudentModel
	if err := ctl.DB.
		First(&student, "student_id = ? AND student_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	totalSeats, err := ctl.totalSeatsFor(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca kapasitas kursi")
	}
	if req.StudentSeatNumber > totalSeats {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Nomor kursi melebihi kapasitas")
	}

	if err := req.ApplyTo(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal masuk tidak valid")
	}

	// Ganti foto kalau ada file baru, hapus file lama setelah tersimpan
	var oldPhoto *string
	if fileHeader, err := c.FormFile("student_photo"); err == nil && fileHeader != nil {
		url, err := helper.SavePhotoWebP("students", fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
		}
		oldPhoto = student.StudentPhotoURL
		student.StudentPhotoURL = &url
	}

	if err := ctl.DB.Save(&student).Error; err != nil {
		if isDuplicateSeatErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Nomor kursi sudah terisi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data siswa")
	}

	if oldPhoto != nil {
		_ = helper.DeletePhoto(*oldPhoto)
	}

	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", dto.FromModelStudent(&student))
}

/* =======================
   DELETE (soft delete)
======================= */

// DELETE /api/students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id invalid")
	}

	res := ctl.DB.Where("student_id = ? AND student_user_id = ?", id, userID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data siswa")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data siswa tidak ditemukan")
	}

	// Riwayat pembayaran ikut dihapus (soft delete)
	if err := ctl.DB.Where("fee_payment_student_id = ?", id).
		Delete(&model.FeePaymentModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus riwayat pembayaran")
	}

	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}
