// file: internals/features/seats/route/seat_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bimbelku_backend/internals/features/seats/controller"
	authMw "bimbelku_backend/internals/middlewares/auth"
)

func SeatRoutes(app *fiber.App, db *gorm.DB) {
	seatController := controller.NewSeatController(db)

	group := app.Group("/api/seats", authMw.AuthMiddleware(db))

	group.Get("/", seatController.GetSeatMap)
	group.Get("/search", seatController.Search)
}
