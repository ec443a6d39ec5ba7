// file: internals/features/expenses/dto/expense_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bimbelku_backend/internals/features/expenses/model"
)

type CreateExpenseRequest struct {
	ExpenseDescription string  `json:"expense_description" validate:"required,min=2,max=300"`
	ExpenseAmount      float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseDate        string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
	ExpenseCategory    string  `json:"expense_category" validate:"omitempty"`
}

func (r *CreateExpenseRequest) ToModel(userID uuid.UUID) (*model.ExpenseModel, error) {
	date, err := time.Parse("2006-01-02", r.ExpenseDate)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(r.ExpenseCategory)
	if category == "" {
		category = model.ExpenseCategoryGeneral
	}
	return &model.ExpenseModel{
		ExpenseUserID:      userID,
		ExpenseDescription: strings.TrimSpace(r.ExpenseDescription),
		ExpenseAmount:      r.ExpenseAmount,
		ExpenseDate:        date,
		ExpenseCategory:    category,
	}, nil
}

type UpdateExpenseRequest struct {
	ExpenseDescription string  `json:"expense_description" validate:"required,min=2,max=300"`
	ExpenseAmount      float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseDate        string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
	ExpenseCategory    string  `json:"expense_category" validate:"omitempty"`
}

func (r *UpdateExpenseRequest) ApplyTo(m *model.ExpenseModel) error {
	date, err := time.Parse("2006-01-02", r.ExpenseDate)
	if err != nil {
		return err
	}
	m.ExpenseDescription = strings.TrimSpace(r.ExpenseDescription)
	m.ExpenseAmount = r.ExpenseAmount
	m.ExpenseDate = date
	if category := strings.TrimSpace(r.ExpenseCategory); category != "" {
		m.ExpenseCategory = category
	}
	return nil
}

type ExpenseResponse struct {
	ExpenseID          uuid.UUID `json:"expense_id"`
	ExpenseDescription string    `json:"expense_description"`
	ExpenseAmount      float64   `json:"expense_amount"`
	ExpenseDate        string    `json:"expense_date"`
	ExpenseCategory    string    `json:"expense_category"`
}

func FromModelExpense(m *model.ExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:          m.ExpenseID,
		ExpenseDescription: m.ExpenseDescription,
		ExpenseAmount:      m.ExpenseAmount,
		ExpenseDate:        m.ExpenseDate.Format("2006-01-02"),
		ExpenseCategory:    m.ExpenseCategory,
	}
}

func FromModelExpenses(list []model.ExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelExpense(&list[i]))
	}
	return out
}
