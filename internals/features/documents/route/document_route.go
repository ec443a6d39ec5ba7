// file: internals/features/documents/route/document_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bimbelku_backend/internals/features/documents/controller"
	authMw "bimbelku_backend/internals/middlewares/auth"
)

func DocumentRoutes(app *fiber.App, db *gorm.DB) {
	documentController := controller.NewDocumentController(db)

	group := app.Group("/api/students/:id", authMw.AuthMiddleware(db))

	group.Get("/fees/:feeId/receipt", documentController.Receipt)
	group.Get("/idcard", documentController.IDCard)
}
