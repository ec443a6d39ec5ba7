// file: internals/features/notifications/scheduler/reminder_scheduler.go
package scheduler

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/features/notifications/service"
	studentModel "bimbelku_backend/internals/features/students/model"
)

// StartReminderScheduler menjalankan scan tunggakan harian (default 09:00)
// dan mengirim ringkasan ke Telegram admin.
func StartReminderScheduler(db *gorm.DB) *cron.Cron {
	spec := configs.GetEnv("REMINDER_CRON", "0 9 * * *")

	engine := cron.New(cron.WithLocation(time.Local))
	_, err := engine.AddFunc(spec, func() {
		log.Println("[CRON] Scan tunggakan harian dimulai...")
		if err := scanAndNotify(db); err != nil {
			log.Printf("[CRON ERROR] Scan tunggakan gagal: %v", err)
		}
	})
	if err != nil {
		log.Printf("[ERROR] REMINDER_CRON tidak valid (%q): %v", spec, err)
		return nil
	}

	engine.Start()
	log.Printf("✅ Reminder scheduler aktif (%s).", spec)
	return engine
}

func scanAndNotify(db *gorm.DB) error {
	threshold := configs.OverdueThresholdDays()
	now := time.Now().UTC()

	var students []studentModel.StudentModel
	if err := db.Preload("FeePayments").Find(&students).Error; err != nil {
		return err
	}

	var lines []string
	for i := range students {
		s := &students[i]
		dates := make([]time.Time, 0, len(s.FeePayments))
		for _, p := range s.FeePayments {
			dates = append(dates, p.FeePaymentDate)
		}
		info := service.Classify(dates, now, threshold)
		if info.Status != service.OverdueStatusOverdue {
			continue
		}
		if info.NeverPaid {
			lines = append(lines, fmt.Sprintf("- %s (kursi %d): belum ada pembayaran", s.StudentName, s.StudentSeatNumber))
		} else {
			lines = append(lines, fmt.Sprintf("- %s (kursi %d): %d hari", s.StudentName, s.StudentSeatNumber, info.DaysSinceLast))
		}
	}

	if len(lines) == 0 {
		log.Println("[CRON] Tidak ada tunggakan hari ini")
		return nil
	}

	summary := fmt.Sprintf("📋 Tunggakan SPP per %s (%d siswa):\n%s",
		now.Format("2006-01-02"), len(lines), strings.Join(lines, "\n"))
	log.Printf("[CRON] %d siswa menunggak", len(lines))
	return service.SendTelegram(summary)
}
