package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", controllers.Login)

	authController := &controllers.AuthController{}
	protected := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	protected.Use(database.InjectDBMiddleware(authController))
	protected.Get("/logout", authController.Logout)
	protected.Get("/profile", authController.GetProfile)
}
