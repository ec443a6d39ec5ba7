// file: internals/features/seats/controller/seat_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/features/seats/service"
	studentModel "bimbelku_backend/internals/features/students/model"
	authModel "bimbelku_backend/internals/features/users/auth/model"
	helper "bimbelku_backend/internals/helpers"
)

type SeatController struct {
	DB *gorm.DB
}

func NewSeatController(db *gorm.DB) *SeatController {
	return &SeatController{DB: db}
}

func (ctl *SeatController) loadStudentsAndSeats(c *fiber.Ctx) ([]studentModel.StudentModel, int, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, 0, err
	}

	var user authModel.UserModel
	if err := ctl.DB.Select("total_seats").First(&user, "id = ?", userID).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca kapasitas kursi")
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Where("student_user_id = ?", userID).
		Order("student_seat_number ASC").
		Find(&students).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return students, user.TotalSeats, nil
}

/* ======= DENAH KURSI ======= */

// GET /api/seats
func (ctl *SeatController) GetSeatMap(c *fiber.Ctx) error {
	students, totalSeats, err := ctl.loadStudentsAndSeats(c)
	if err != nil {
		return err
	}

	seats, available, conflicts := service.Reconcile(totalSeats, students)

	occupied := len(seats) - len(available)

	return helper.JsonOK(c, "Denah kursi berhasil diambil", fiber.Map{
		"total_seats":            len(seats),
		"occupied":               occupied,
		"available":              len(available),
		"available_seat_numbers": available,
		"seats":                  seats,
		"conflicts":              conflicts,
	})
}

/* ======= PENCARIAN ======= */

// GET /api/seats/search?q=
func (ctl *SeatController) Search(c *fiber.Ctx) error {
	students, _, err := ctl.loadStudentsAndSeats(c)
	if err != nil {
		return err
	}

	result := service.SearchByNamePrefix(students, c.Query("q"))

	return helper.JsonOK(c, "Pencarian selesai", fiber.Map{
		"performed":        result.Performed,
		"matches":          result.Matches,
		"highlight_ttl_ms": configs.SearchHighlightTTLms(),
	})
}
