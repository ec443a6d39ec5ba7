package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users: satu akun = satu lembaga bimbel
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password     string    `gorm:"not null" json:"-" validate:"required,min=8"`
	CoachingName string    `gorm:"size:100;not null" json:"coaching_name" validate:"required,min=2,max=100"`
	OwnerName    string    `gorm:"size:100;not null" json:"owner_name" validate:"required,min=2,max=100"`
	TotalSeats   int       `gorm:"not null;default:50" json:"total_seats" validate:"required,min=1,max=500"`
	GoogleID     *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " wajib diisi. "
			case "email":
				msg += "Format email tidak valid. "
			case "min":
				msg += fieldErr.Field() + " harus minimal " + fieldErr.Param() + ". "
			case "max":
				msg += fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + ". "
			default:
				msg += fieldErr.Field() + " tidak valid. "
			}
		}
		return errors.New(msg)
	}
	return err
}
