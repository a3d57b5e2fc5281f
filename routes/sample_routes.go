package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSampleRoutes(app *fiber.App) {
	controller := &controllers.SampleController{}
	api := app.Group(config.MAIN_ROUTES+"/samples", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllSamples)
	api.Post("/", middleware.CheckPermission("order.manage"), controller.CreateSample)
	api.Get("/:id", controller.GetSampleByID)
	api.Put("/:id", middleware.CheckPermission("order.manage"), controller.UpdateSample)
	api.Delete("/:id", middleware.CheckPermission("order.manage"), controller.DeleteSample)
}
