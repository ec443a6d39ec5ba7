// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	// Tenant (satu akun = satu lembaga)
	StudentUserID uuid.UUID `json:"student_user_id" gorm:"type:uuid;not null;index;column:student_user_id"`

	StudentName       string `json:"student_name" gorm:"type:varchar(100);not null;column:student_name"`
	StudentCourseName string `json:"student_course_name" gorm:"type:varchar(100);not null;column:student_course_name"`

	// Nomor HP 10 digit (tanpa kode negara)
	StudentMobile  string `json:"student_mobile" gorm:"type:varchar(10);not null;column:student_mobile"`
	StudentAddress string `json:"student_address" gorm:"type:text;column:student_address"`

	// Nomor kursi 1..total_seats milik user; keunikan ditegakkan index parsial di DB
	StudentSeatNumber int `json:"student_seat_number" gorm:"type:integer;not null;column:student_seat_number;check:student_seat_number>=1"`

	StudentJoinDate time.Time `json:"student_join_date" gorm:"type:date;not null;column:student_join_date"`

	// Total biaya kursus yang harus dibayar; sisa tagihan = total - jumlah pembayaran
	StudentTotalFees float64 `json:"student_total_fees" gorm:"type:numeric(12,2);not null;default:0;column:student_total_fees;check:student_total_fees>=0"`

	// Path publik foto (WebP di /uploads), kosong = belum ada foto
	StudentPhotoURL *string `json:"student_photo_url" gorm:"type:text;column:student_photo_url"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"type:timestamptz;index;column:student_deleted_at"`

	/* ========== Relations (optional) ========== */
	FeePayments []FeePaymentModel `json:"fee_payments,omitempty" gorm:"foreignKey:FeePaymentStudentID;references:StudentID"`
}

func (StudentModel) TableName() string { return "students" }

// PaidTotal jumlah seluruh pembayaran berstatus paid (relasi harus sudah di-preload).
func (s *StudentModel) PaidTotal() float64 {
	var total float64
	for i := range s.FeePayments {
		if s.FeePayments[i].FeePaymentStatus == FeeStatusPaid {
			total += s.FeePayments[i].FeePaymentAmount
		}
	}
	return total
}
