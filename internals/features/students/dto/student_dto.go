// file: internals/features/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bimbelku_backend/internals/features/students/model"
)

/* =========================================================
   REQUEST: Create / Update (multipart form, foto opsional)
   ========================================================= */

type CreateStudentRequest struct {
	StudentName       string  `json:"student_name" form:"student_name" validate:"required,min=2,max=100"`
	StudentCourseName string  `json:"student_course_name" form:"student_course_name" validate:"required,min=2,max=100"`
	StudentMobile     string  `json:"student_mobile" form:"student_mobile" validate:"required,len=10,numeric"`
	StudentAddress    string  `json:"student_address" form:"student_address" validate:"omitempty,max=500"`
	StudentSeatNumber int     `json:"student_seat_number" form:"student_seat_number" validate:"required,min=1"`
	StudentJoinDate   string  `json:"student_join_date" form:"student_join_date" validate:"required,datetime=2006-01-02"`
	StudentTotalFees  float64 `json:"student_total_fees" form:"student_total_fees" validate:"omitempty,gte=0"`
}

func (r *CreateStudentRequest) ToModel(userID uuid.UUID) (*model.StudentModel, error) {
	joinDate, err := time.Parse("2006-01-02", r.StudentJoinDate)
	if err != nil {
		return nil, err
	}
	return &model.StudentModel{
		StudentUserID:     userID,
		StudentName:       strings.TrimSpace(r.StudentName),
		StudentCourseName: strings.TrimSpace(r.StudentCourseName),
		StudentMobile:     strings.TrimSpace(r.StudentMobile),
		StudentAddress:    strings.TrimSpace(r.StudentAddress),
		StudentSeatNumber: r.StudentSeatNumber,
		StudentJoinDate:   joinDate,
		StudentTotalFees:  r.StudentTotalFees,
	}, nil
}

type UpdateStudentRequest struct {
	StudentName       string  `json:"student_name" form:"student_name" validate:"required,min=2,max=100"`
	StudentCourseName string  `json:"student_course_name" form:"student_course_name" validate:"required,min=2,max=100"`
	StudentMobile     string  `json:"student_mobile" form:"student_mobile" validate:"required,len=10,numeric"`
	StudentAddress    string  `json:"student_address" form:"student_address" validate:"omitempty,max=500"`
	StudentSeatNumber int     `json:"student_seat_number" form:"student_seat_number" validate:"required,min=1"`
	StudentJoinDate   string  `json:"student_join_date" form:"student_join_date" validate:"required,datetime=2006-01-02"`
	StudentTotalFees  float64 `json:"student_total_fees" form:"student_total_fees" validate:"omitempty,gte=0"`

	// Nomor kursi sebelum edit, dipakai untuk deteksi pindah kursi
	OriginalSeatNumber int `json:"original_seat_number" form:"original_seat_number" validate:"omitempty,min=0"`
}

func (r *UpdateStudentRequest) ApplyTo(s *model.StudentModel) error {
	joinDate, err := time.Parse("2006-01-02", r.StudentJoinDate)
	if err != nil {
		return err
	}
	s.StudentName = strings.TrimSpace(r.StudentName)
	s.StudentCourseName = strings.TrimSpace(r.StudentCourseName)
	s.StudentMobile = strings.TrimSpace(r.StudentMobile)
	s.StudentAddress = strings.TrimSpace(r.StudentAddress)
	s.StudentSeatNumber = r.StudentSeatNumber
	s.StudentJoinDate = joinDate
	s.StudentTotalFees = r.StudentTotalFees
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentName       string    `json:"student_name"`
	StudentCourseName string    `json:"student_course_name"`
	StudentMobile     string    `json:"student_mobile"`
	StudentAddress    string    `json:"student_address"`
	StudentSeatNumber int       `json:"student_seat_number"`
	StudentJoinDate   string    `json:"student_join_date"`
	StudentTotalFees  float64   `json:"student_total_fees"`
	StudentPhotoURL   *string   `json:"student_photo_url,omitempty"`

	FeePayments []FeePaymentResponse `json:"fee_payments,omitempty"`
}

func FromModelStudent(s *model.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:         s.StudentID,
		StudentName:       s.StudentName,
		StudentCourseName: s.StudentCourseName,
		StudentMobile:     s.StudentMobile,
		StudentAddress:    s.StudentAddress,
		StudentSeatNumber: s.StudentSeatNumber,
		StudentJoinDate:   s.StudentJoinDate.Format("2006-01-02"),
		StudentTotalFees:  s.StudentTotalFees,
		StudentPhotoURL:   s.StudentPhotoURL,
	}
	for i := range s.FeePayments {
		resp.FeePayments = append(resp.FeePayments, FromModelFeePayment(&s.FeePayments[i]))
	}
	return resp
}

func FromModelStudents(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelStudent(&list[i]))
	}
	return out
}
