// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bimbelku_backend/internals/features/notifications/controller"
	rateLimiter "bimbelku_backend/internals/middlewares"
	authMw "bimbelku_backend/internals/middlewares/auth"
)

func NotificationRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	group := app.Group("/api/notifications", authMw.AuthMiddleware(db))

	group.Get("/overdue", ctl.Overdue)
	group.Post("/remind", rateLimiter.ReminderRateLimiter(), ctl.Remind)
	group.Get("/logs", ctl.Logs)
}
