// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "bimbelku_backend/internals/features/analytics/route"
	documentRoute "bimbelku_backend/internals/features/documents/route"
	expenseRoute "bimbelku_backend/internals/features/expenses/route"
	notificationRoute "bimbelku_backend/internals/features/notifications/route"
	seatRoute "bimbelku_backend/internals/features/seats/route"
	studentRoute "bimbelku_backend/internals/features/students/route"
	authRoute "bimbelku_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(app, db)

	log.Println("[INFO] Mounting Seat routes...")
	seatRoute.SeatRoutes(app, db)

	log.Println("[INFO] Mounting Expense routes...")
	expenseRoute.ExpenseRoutes(app, db)

	log.Println("[INFO] Mounting Analytics routes...")
	analyticsRoute.AnalyticsRoutes(app, db)

	log.Println("[INFO] Mounting Notification routes...")
	notificationRoute.NotificationRoutes(app, db)

	log.Println("[INFO] Mounting Document routes...")
	documentRoute.DocumentRoutes(app, db)
}
