package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoleRoutes(app *fiber.App) {
	controller := &controllers.RoleController{}
	api := app.Group(config.MAIN_ROUTES+"/roles", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetAllRoles)
	api.Get("/:id", controller.GetRoleByID)
	api.Get("/:id/menus", controller.GetRoleMenus)

	api.Post("/", middleware.CheckPermission("user.manage"), controller.CreateRole)
	api.Put("/:id/menus", middleware.CheckPermission("user.manage"), controller.UpdateRoleMenus)
	api.Put("/:id", middleware.CheckPermission("user.manage"), controller.UpdateRole)
	api.Delete("/:id", middleware.CheckPermission("user.manage"), controller.DeleteRole)
}
