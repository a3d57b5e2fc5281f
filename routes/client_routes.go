package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupClientRoutes(app *fiber.App) {
	controller := &controllers.ClientController{}
	api := app.Group(config.MAIN_ROUTES+"/clients", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllClients)
	api.Post("/", controller.CreateClient)
	api.Post("/upload-excel", controller.CreateClientsFromExcel)
	api.Post("/export", controller.ExportClients)
	api.Get("/:id", controller.GetClientByID)
	api.Put("/:id", controller.UpdateClient)
	api.Delete("/:id", controller.DeleteClient)
}
