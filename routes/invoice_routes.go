package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupInvoiceRoutes(app *fiber.App) {
	controller := &controllers.InvoiceController{}
	api := app.Group(config.MAIN_ROUTES+"/invoices", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllInvoices)
	api.Post("/", middleware.CheckPermission("invoice.manage"), controller.CreateInvoice)
	api.Get("/:id", controller.GetInvoiceByID)
	api.Put("/:id", middleware.CheckPermission("invoice.manage"), controller.UpdateInvoice)
	api.Delete("/:id", middleware.CheckPermission("invoice.manage"), controller.DeleteInvoice)
}
