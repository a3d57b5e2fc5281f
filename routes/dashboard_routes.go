package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	controller := &controllers.DashboardController{}
	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetDashboard)
}
