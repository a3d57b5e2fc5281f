package department

import (
	"fiber-lims/config"
	"fiber-lims/database"
	"fiber-lims/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/departments", middleware.AuthMiddleware)
	handler := &DepartmentHandler{}
	api.Use(database.InjectDBMiddleware(handler))

	api.Get("/", handler.GetAllDepartments)
	api.Post("/", middleware.CheckPermission("user.manage"), handler.CreateDepartment)
	api.Get("/:id", handler.GetDepartmentByID)
	api.Put("/:id", middleware.CheckPermission("user.manage"), handler.UpdateDepartment)
	api.Delete("/:id", middleware.CheckPermission("user.manage"), handler.DeleteDepartment)
}
