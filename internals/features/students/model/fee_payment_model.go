// file: internals/features/students/model/fee_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeStatusPaid    = "paid"
	FeeStatusPending = "pending"
)

func IsValidFeeStatus(s string) bool {
	return s == FeeStatusPaid || s == FeeStatusPending
}

type FeePaymentModel struct {
	// PK
	FeePaymentID uuid.UUID `json:"fee_payment_id" gorm:"type:uuid;primaryKey;column:fee_payment_id;default:gen_random_uuid()"`

	FeePaymentStudentID uuid.UUID `json:"fee_payment_student_id" gorm:"type:uuid;not null;index;column:fee_payment_student_id"`
	FeePaymentUserID    uuid.UUID `json:"fee_payment_user_id" gorm:"type:uuid;not null;index;column:fee_payment_user_id"`

	FeePaymentAmount      float64   `json:"fee_payment_amount" gorm:"type:numeric(12,2);not null;column:fee_payment_amount;check:fee_payment_amount>0"`
	FeePaymentDate        time.Time `json:"fee_payment_date" gorm:"type:date;not null;column:fee_payment_date"`
	FeePaymentDescription *string   `json:"fee_payment_description" gorm:"type:text;column:fee_payment_description"`

	FeePaymentStatus string `json:"fee_payment_status" gorm:"type:varchar(10);not null;default:'paid';column:fee_payment_status;check:fee_payment_status IN ('paid','pending')"`

	// Midtrans Snap (opsional, terisi saat tagihan dibuatkan link pembayaran)
	FeePaymentOrderID    *string `json:"fee_payment_order_id,omitempty" gorm:"type:varchar(64);column:fee_payment_order_id"`
	FeePaymentPaymentURL *string `json:"fee_payment_payment_url,omitempty" gorm:"type:text;column:fee_payment_payment_url"`

	FeePaymentCreatedAt time.Time      `json:"fee_payment_created_at" gorm:"type:timestamptz;not null;autoCreateTime;column:fee_payment_created_at"`
	FeePaymentUpdatedAt time.Time      `json:"fee_payment_updated_at" gorm:"type:timestamptz;not null;autoUpdateTime;column:fee_payment_updated_at"`
	FeePaymentDeletedAt gorm.DeletedAt `json:"fee_payment_deleted_at,omitempty" gorm:"type:timestamptz;index;column:fee_payment_deleted_at"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
