// file: internals/features/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Category Constants ===================== */

const (
	ExpenseCategoryGeneral     = "General"
	ExpenseCategoryRent        = "Rent"
	ExpenseCategoryUtilities   = "Utilities"
	ExpenseCategorySupplies    = "Supplies"
	ExpenseCategoryMaintenance = "Maintenance"
	ExpenseCategoryMarketing   = "Marketing"
	ExpenseCategoryOther       = "Other"
)

// ValidCategories urutan tampilan kategori pengeluaran.
var ValidCategories = []string{
	ExpenseCategoryGeneral,
	ExpenseCategoryRent,
	ExpenseCategoryUtilities,
	ExpenseCategorySupplies,
	ExpenseCategoryMaintenance,
	ExpenseCategoryMarketing,
	ExpenseCategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

/* ===================== Model ===================== */

type ExpenseModel struct {
	// PK
	ExpenseID uuid.UUID `json:"expense_id" gorm:"type:uuid;primaryKey;column:expense_id;default:gen_random_uuid()"`

	ExpenseUserID uuid.UUID `json:"expense_user_id" gorm:"type:uuid;not null;index;column:expense_user_id"`

	ExpenseDescription string    `json:"expense_description" gorm:"type:text;not null;column:expense_description"`
	ExpenseAmount      float64   `json:"expense_amount" gorm:"type:numeric(12,2);not null;column:expense_amount;check:expense_amount>0"`
	ExpenseDate        time.Time `json:"expense_date" gorm:"type:date;not null;column:expense_date"`
	ExpenseCategory    string    `json:"expense_category" gorm:"type:varchar(20);not null;default:'General';column:expense_category"`

	ExpenseCreatedAt time.Time      `json:"expense_created_at" gorm:"type:timestamptz;not null;autoCreateTime;column:expense_created_at"`
	ExpenseUpdatedAt time.Time      `json:"expense_updated_at" gorm:"type:timestamptz;not null;autoUpdateTime;column:expense_updated_at"`
	ExpenseDeletedAt gorm.DeletedAt `json:"expense_deleted_at,omitempty" gorm:"type:timestamptz;index;column:expense_deleted_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }
