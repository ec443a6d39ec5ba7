// file: internals/features/notifications/model/reminder_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Channel Constants ===================== */

const (
	ReminderChannelWhatsApp = "whatsapp"
	ReminderChannelTelegram = "telegram"
)

/* ===================== Model ===================== */

type ReminderLogModel struct {
	// PK
	ReminderLogID uuid.UUID `json:"reminder_log_id" gorm:"type:uuid;primaryKey;column:reminder_log_id;default:gen_random_uuid()"`

	ReminderLogUserID    uuid.UUID `json:"reminder_log_user_id" gorm:"type:uuid;not null;index;column:reminder_log_user_id"`
	ReminderLogStudentID uuid.UUID `json:"reminder_log_student_id" gorm:"type:uuid;not null;index;column:reminder_log_student_id"`

	ReminderLogChannel string `json:"reminder_log_channel" gorm:"type:varchar(20);not null;column:reminder_log_channel"`
	ReminderLogMessage string `json:"reminder_log_message" gorm:"type:text;not null;column:reminder_log_message"`

	// Snapshot kondisi tunggakan saat pengingat dikirim
	ReminderLogPayload datatypes.JSON `json:"reminder_log_payload" gorm:"type:jsonb;column:reminder_log_payload"`

	ReminderLogCreatedAt time.Time      `json:"reminder_log_created_at" gorm:"type:timestamptz;not null;autoCreateTime;column:reminder_log_created_at"`
	ReminderLogDeletedAt gorm.DeletedAt `json:"reminder_log_deleted_at,omitempty" gorm:"type:timestamptz;index;column:reminder_log_deleted_at"`
}

func (ReminderLogModel) TableName() string { return "reminder_logs" }
