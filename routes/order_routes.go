package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	controller := &controllers.OrderController{}
	api := app.Group(config.MAIN_ROUTES+"/orders", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllOrders)
	api.Post("/", middleware.CheckPermission("order.manage"), controller.CreateOrder)
	api.Get("/:id", controller.GetOrderByID)
	api.Get("/:id/samples", controller.GetOrderSamples)
	api.Put("/:id/status", middleware.CheckPermission("order.manage"), controller.UpdateOrderStatus)
	api.Put("/:id", middleware.CheckPermission("order.manage"), controller.UpdateOrder)
	api.Delete("/:id", middleware.CheckPermission("order.manage"), controller.DeleteOrder)
}
