package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPermissionRoutes(app *fiber.App) {
	controller := &controllers.PermissionController{}
	api := app.Group(config.MAIN_ROUTES+"/permissions", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllPermissions)
	api.Get("/check", controller.CheckPermission)
}
