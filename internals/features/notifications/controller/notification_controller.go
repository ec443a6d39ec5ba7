// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	reminderModel "bimbelku_backend/internals/features/notifications/model"
	"bimbelku_backend/internals/features/notifications/service"
	studentDto "bimbelku_backend/internals/features/students/dto"
	studentModel "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:        db,
		Validator: validator.New(),
	}
}

func coachingNameFromLocals(c *fiber.Ctx) string {
	name, _ := c.Locals("coaching_name").(string)
	if strings.TrimSpace(name) == "" {
		return "Bimbel"
	}
	return name
}

func paymentDates(s *studentModel.StudentModel) []time.Time {
	dates := make([]time.Time, 0, len(s.FeePayments))
	for _, p := range s.FeePayments {
		dates = append(dates, p.FeePaymentDate)
	}
	return dates
}

func latestPaymentAmount(s *studentModel.StudentModel) float64 {
	var amount float64
	var latest time.Time
	for _, p := range s.FeePayments {
		if p.FeePaymentDate.After(latest) || latest.IsZero() {
			latest = p.FeePaymentDate
			amount = p.FeePaymentAmount
		}
	}
	return amount
}

func buildReminder(coachingName string, s *studentModel.StudentModel, info service.OverdueInfo) (string, string) {
	message := service.ReminderMessage(service.ReminderTarget{
		CoachingName: coachingName,
		StudentName:  s.StudentName,
		SeatNumber:   s.StudentSeatNumber,
		Mobile:       s.StudentMobile,
		LastAmount:   latestPaymentAmount(s),
	}, info)
	return message, service.WaLink(s.StudentMobile, message)
}

/* ======= OVERDUE ======= */

type overdueRow struct {
	studentDto.StudentResponse
	Overdue              bool    `json:"overdue"`
	DaysSinceLastPayment *int    `json:"days_since_last_payment"`
	LastPaymentDate      *string `json:"last_payment_date,omitempty"`
	NeverPaid            bool    `json:"never_paid"`
	Message              string  `json:"message"`
	WaLink               string  `json:"wa_link"`
}

// GET /api/notifications/overdue
// Daftar siswa yang perlu ditagih, lengkap dengan pesan siap kirim + link wa.me.
func (ctl *NotificationController) Overdue(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Preload("FeePayments").
		Where("student_user_id = ?", userID).
		Order("student_seat_number ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	coachingName := coachingNameFromLocals(c)
	threshold := configs.OverdueThresholdDays()
	now := time.Now().UTC()

	out := make([]overdueRow, 0)
	for i := range students {
		s := &students[i]
		info := service.Classify(paymentDates(s), now, threshold)
		if !info.NeverPaid && info.DaysSinceLast < 1 {
			continue
		}

		message, waLink := buildReminder(coachingName, s, info)
		row := overdueRow{
			StudentResponse: studentDto.FromModelStudent(s),
			Overdue:         info.Status == service.OverdueStatusOverdue,
			NeverPaid:       info.NeverPaid,
			Message:         message,
			WaLink:          waLink,
		}
		if !info.NeverPaid {
			days := info.DaysSinceLast
			row.DaysSinceLastPayment = &days
		}
		if info.LastPaymentDate != nil {
			d := info.LastPaymentDate.Format("2006-01-02")
			row.LastPaymentDate = &d
		}
		out = append(out, row)
	}

	return helper.JsonOK(c, "Daftar tagihan berhasil diambil", fiber.Map{
		"threshold_days": threshold,
		"students":       out,
	})
}

/* ======= REMIND ======= */

type remindResult struct {
	StudentID     uuid.UUID `json:"student_id"`
	StudentName   string    `json:"student_name"`
	ReminderLogID uuid.UUID `json:"reminder_log_id"`
	Message       string    `json:"message"`
	WaLink        string    `json:"wa_link"`
	Channel       string    `json:"channel"`
}

// POST /api/notifications/remind
// Menyusun pesan pengingat + link wa.me per siswa, kirim salinan ke Telegram
// admin kalau dikonfigurasi, dan catat semuanya ke reminder_logs.
func (ctl *NotificationController) Remind(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid4"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(req.StudentIDs))
	for _, raw := range req.StudentIDs {
		id, _ := uuid.Parse(raw)
		ids = append(ids, id)
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Preload("FeePayments").
		Where("student_id IN ? AND student_user_id = ?", ids, userID).
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if len(students) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data siswa tidak ditemukan")
	}

	coachingName := coachingNameFromLocals(c)
	threshold := configs.OverdueThresholdDays()
	now := time.Now().UTC()

	results := make([]remindResult, 0, len(students))
	for i := range students {
		s := &students[i]
		info := service.Classify(paymentDates(s), now, threshold)
		message, waLink := buildReminder(coachingName, s, info)

		channel := reminderModel.ReminderChannelWhatsApp
		if service.TelegramEnabled() {
			tgText := fmt.Sprintf("📣 Pengingat SPP dikirim ke %s (kursi %d)\n%s",
				s.StudentName, s.StudentSeatNumber, message)
			if err := service.SendTelegram(tgText); err == nil {
				channel = reminderModel.ReminderChannelTelegram
			}
		}

		payload, _ := json.Marshal(fiber.Map{
			"status":          info.Status,
			"days_since_last": info.DaysSinceLast,
			"never_paid":      info.NeverPaid,
		})
		logEntry := reminderModel.ReminderLogModel{
			ReminderLogUserID:    userID,
			ReminderLogStudentID: s.StudentID,
			ReminderLogChannel:   channel,
			ReminderLogMessage:   message,
			ReminderLogPayload:   datatypes.JSON(payload),
		}
		if err := ctl.DB.Create(&logEntry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat pengingat")
		}

		results = append(results, remindResult{
			StudentID:     s.StudentID,
			StudentName:   s.StudentName,
			ReminderLogID: logEntry.ReminderLogID,
			Message:       message,
			WaLink:        waLink,
			Channel:       channel,
		})
	}

	return helper.JsonOK(c, "Pengingat berhasil disiapkan", fiber.Map{
		"reminders": results,
	})
}

/* ======= LOGS ======= */

// GET /api/notifications/logs
func (ctl *NotificationController) Logs(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var logs []reminderModel.ReminderLogModel
	if err := ctl.DB.
		Where("reminder_log_user_id = ?", userID).
		Order("reminder_log_created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat pengingat")
	}

	return helper.JsonOK(c, "Riwayat pengingat berhasil diambil", logs)
}
