// file: internals/features/expenses/route/expense_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bimbelku_backend/internals/features/expenses/controller"
	authMw "bimbelku_backend/internals/middlewares/auth"
)

func ExpenseRoutes(app *fiber.App, db *gorm.DB) {
	expenseController := controller.NewExpenseController(db)

	group := app.Group("/api/expenses", authMw.AuthMiddleware(db))

	group.Get("/categories", expenseController.CategoryTotals)
	group.Get("/", expenseController.List)
	group.Post("/", expenseController.Create)
	group.Put("/:id", expenseController.Update)
	group.Delete("/:id", expenseController.Delete)
}
