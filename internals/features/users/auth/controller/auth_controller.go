package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "bimbelku_backend/internals/features/users/auth/model"
	"bimbelku_backend/internals/features/users/auth/service"
	helper "bimbelku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

/* =======================
   PROFILE
======================= */

// GET /api/auth/profile
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "Profil berhasil diambil", fiber.Map{
		"id":            user.ID,
		"email":         user.Email,
		"coaching_name": user.CoachingName,
		"owner_name":    user.OwnerName,
		"total_seats":   user.TotalSeats,
	})
}

// PUT /api/auth/profile
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		Email        string `json:"email" validate:"required,email"`
		CoachingName string `json:"coaching_name" validate:"required,min=2,max=100"`
		OwnerName    string `json:"owner_name" validate:"required,min=2,max=100"`
		TotalSeats   int    `json:"total_seats" validate:"required,min=1,max=500"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Mengecilkan jumlah kursi boleh saja; siswa di kursi di luar rentang
	// muncul sebagai konflik pada denah, bukan error di sini.
	updates := map[string]any{
		"email":         strings.ToLower(strings.TrimSpace(req.Email)),
		"coaching_name": strings.TrimSpace(req.CoachingName),
		"owner_name":    strings.TrimSpace(req.OwnerName),
		"total_seats":   req.TotalSeats,
	}
	if err := ac.DB.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah dipakai akun lain")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", fiber.Map{
		"email":         updates["email"],
		"coaching_name": updates["coaching_name"],
		"owner_name":    updates["owner_name"],
		"total_seats":   req.TotalSeats,
	})
}
