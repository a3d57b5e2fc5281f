package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	controller := &controllers.UserController{}
	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllUsers)
	api.Get("/:id", controller.GetUserByID)

	api.Post("/", middleware.CheckPermission("user.manage"), controller.CreateUser)
	api.Put("/:id", middleware.CheckPermission("user.manage"), controller.UpdateUser)
	api.Delete("/:id", middleware.CheckPermission("user.manage"), controller.DeleteUser)
}
