// file: internals/features/analytics/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bimbelku_backend/internals/features/analytics/controller"
	authMw "bimbelku_backend/internals/middlewares/auth"
)

func AnalyticsRoutes(app *fiber.App, db *gorm.DB) {
	analyticsController := controller.NewAnalyticsController(db)

	group := app.Group("/api/analytics", authMw.AuthMiddleware(db))

	group.Get("/monthly", analyticsController.Monthly)
	group.Get("/export", analyticsController.ExportExcel)
}
