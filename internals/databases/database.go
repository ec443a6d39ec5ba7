package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	expenseModel "bimbelku_backend/internals/features/expenses/model"
	reminderModel "bimbelku_backend/internals/features/notifications/model"
	studentModel "bimbelku_backend/internals/features/students/model"
	authModel "bimbelku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bimbelku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan auto-migration semua model + unique index kursi.
// Keunikan nomor kursi per lembaga ditegakkan di DB, bukan hanya di UI.
func Migrate() {
	if err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshTokenModel{},
		&studentModel.StudentModel{},
		&studentModel.FeePaymentModel{},
		&expenseModel.ExpenseModel{},
		&reminderModel.ReminderLogModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi: %v", err)
	}

	// Partial unique index: kursi unik hanya untuk siswa aktif (soft delete bebas).
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_students_user_seat
		ON students (student_user_id, student_seat_number)
		WHERE student_deleted_at IS NULL
	`).Error; err != nil {
		log.Printf("[WARN] Gagal membuat index kursi unik: %v", err)
	}

	log.Println("✅ Migrasi selesai.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
