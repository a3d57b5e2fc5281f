package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(app *fiber.App) {
	controller := &controllers.DocumentController{}
	api := app.Group(config.MAIN_ROUTES+"/documents", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllDocuments)
	api.Post("/", middleware.CheckPermission("document.issue"), controller.IssueDocument)
	api.Get("/:id", controller.GetDocumentByID)
	api.Post("/:id/send", middleware.CheckPermission("document.issue"), controller.SendDocument)
}
