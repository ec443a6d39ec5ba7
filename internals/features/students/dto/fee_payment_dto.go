// file: internals/features/students/dto/fee_payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bimbelku_backend/internals/features/students/model"
)

type CreateFeePaymentRequest struct {
	FeePaymentAmount      float64 `json:"fee_payment_amount" validate:"required,gt=0"`
	FeePaymentDate        string  `json:"fee_payment_date" validate:"required,datetime=2006-01-02"`
	FeePaymentDescription string  `json:"fee_payment_description" validate:"omitempty,max=300"`
	FeePaymentStatus      string  `json:"fee_payment_status" validate:"omitempty,oneof=paid pending"`
}

func (r *CreateFeePaymentRequest) ToModel(studentID, userID uuid.UUID) (*model.FeePaymentModel, error) {
	date, err := time.Parse("2006-01-02", r.FeePaymentDate)
	if err != nil {
		return nil, err
	}
	status := r.FeePaymentStatus
	if status == "" {
		status = model.FeeStatusPaid
	}
	m := &model.FeePaymentModel{
		FeePaymentStudentID: studentID,
		FeePaymentUserID:    userID,
		FeePaymentAmount:    r.FeePaymentAmount,
		FeePaymentDate:      date,
		FeePaymentStatus:    status,
	}
	if desc := strings.TrimSpace(r.FeePaymentDescription); desc != "" {
		m.FeePaymentDescription = &desc
	}
	return m, nil
}

type UpdateFeePaymentRequest struct {
	FeePaymentAmount      float64 `json:"fee_payment_amount" validate:"required,gt=0"`
	FeePaymentDate        string  `json:"fee_payment_date" validate:"required,datetime=2006-01-02"`
	FeePaymentDescription string  `json:"fee_payment_description" validate:"omitempty,max=300"`
	FeePaymentStatus      string  `json:"fee_payment_status" validate:"omitempty,oneof=paid pending"`
}

func (r *UpdateFeePaymentRequest) ApplyTo(m *model.FeePaymentModel) error {
	date, err := time.Parse("2006-01-02", r.FeePaymentDate)
	if err != nil {
		return err
	}
	m.FeePaymentAmount = r.FeePaymentAmount
	m.FeePaymentDate = date
	if r.FeePaymentStatus != "" {
		m.FeePaymentStatus = r.FeePaymentStatus
	}
	if desc := strings.TrimSpace(r.FeePaymentDescription); desc != "" {
		m.FeePaymentDescription = &desc
	} else {
		m.FeePaymentDescription = nil
	}
	return nil
}

type FeePaymentResponse struct {
	FeePaymentID          uuid.UUID `json:"fee_payment_id"`
	FeePaymentStudentID   uuid.UUID `json:"fee_payment_student_id"`
	FeePaymentAmount      float64   `json:"fee_payment_amount"`
	FeePaymentDate        string    `json:"fee_payment_date"`
	FeePaymentDescription *string   `json:"fee_payment_description,omitempty"`
	FeePaymentStatus      string    `json:"fee_payment_status"`
	FeePaymentPaymentURL  *string   `json:"fee_payment_payment_url,omitempty"`
}

func FromModelFeePayment(m *model.FeePaymentModel) FeePaymentResponse {
	return FeePaymentResponse{
		FeePaymentID:          m.FeePaymentID,
		FeePaymentStudentID:   m.FeePaymentStudentID,
		FeePaymentAmount:      m.FeePaymentAmount,
		FeePaymentDate:        m.FeePaymentDate.Format("2006-01-02"),
		FeePaymentDescription: m.FeePaymentDescription,
		FeePaymentStatus:      m.FeePaymentStatus,
		FeePaymentPaymentURL:  m.FeePaymentPaymentURL,
	}
}

func FromModelFeePayments(list []model.FeePaymentModel) []FeePaymentResponse {
	out := make([]FeePaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelFeePayment(&list[i]))
	}
	return out
}
