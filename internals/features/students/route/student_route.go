// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bimbelku_backend/internals/features/students/controller"
	authMw "bimbelku_backend/internals/middlewares/auth"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	studentController := controller.NewStudentController(db)
	feeController := controller.NewFeePaymentController(db)

	group := app.Group("/api/students", authMw.AuthMiddleware(db))

	// Static path harus terdaftar sebelum :id
	group.Get("/overdue", studentController.Overdue)
	group.Get("/export", studentController.ExportExcel)

	group.Get("/", studentController.List)
	group.Post("/", studentController.Create)
	group.Get("/:id", studentController.GetByID)
	group.Put("/:id", studentController.Update)
	group.Delete("/:id", studentController.Delete)

	// Pembayaran SPP per siswa
	group.Get("/:id/fees", feeController.List)
	group.Post("/:id/fees", feeController.Create)
	group.Put("/:id/fees/:feeId", feeController.Update)
	group.Delete("/:id/fees/:feeId", feeController.Delete)
	group.Post("/:id/fees/:feeId/payment-link", feeController.CreatePaymentLink)
}
