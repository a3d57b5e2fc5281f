package routes

import (
	"fiber-lims/config"
	"fiber-lims/controllers"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMenuRoutes(app *fiber.App) {
	controller := &controllers.MenuController{}
	api := app.Group(config.MAIN_ROUTES+"/menus", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(controller))

	api.Get("/", controller.GetMenus)
	api.Get("/tree", controller.GetMenuTree)
	api.Get("/:id", controller.GetMenuByID)
	api.Get("/:id/check-roles", controller.CheckMenuRoles)

	api.Post("/", middleware.CheckPermission("menu.manage"), controller.CreateMenu)
	api.Put("/:id", middleware.CheckPermission("menu.manage"), controller.UpdateMenu)
	api.Delete("/:id/force", middleware.CheckPermission("menu.manage"), controller.ForceDeleteMenu)
	api.Delete("/:id", middleware.CheckPermission("menu.manage"), controller.DeleteMenu)
}
