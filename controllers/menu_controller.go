package controllers

import (
	"fiber-lims/apperrors"
	"fiber-lims/middleware"
	"fiber-lims/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB}
}

// GetMenus returns the flat menu list ordered by menu_order. With an
// email query it returns only the menus that user is authorized to
// see (role grants plus direct grants, deduplicated).
func (mc *MenuController) GetMenus(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email != "" {
		menus, err := services.NewAuthzService(mc.DB).MenusForUser(email)
		if err != nil {
			return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
		}
		return ctx.JSON(fiber.Map{"data": menus, "success": true})
	}

	menus, err := services.NewMenuService(mc.DB).GetAll()
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}
	return ctx.JSON(fiber.Map{"data": menus, "success": true})
}

// GetMenuTree returns root menus with their ordered children, mapped
// to the shape the sidebar expects.
func (mc *MenuController) GetMenuTree(ctx *fiber.Ctx) error {
	menus, err := services.NewMenuService(mc.DB).Tree()
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	var result []map[string]interface{}
	for _, menu := range menus {
		children := []map[string]interface{}{}
		for _, child := range menu.Children {
			children = append(children, map[string]interface{}{
				"title": child.MenuName,
				"url":   child.Path,
			})
		}

		result = append(result, map[string]interface{}{
			"title":    menu.MenuName,
			"url":      menu.Path,
			"icon":     menu.Icon,
			"isActive": true,
			"items":    children,
		})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": result})
}

func (mc *MenuController) GetMenuByID(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	menu, err := services.NewMenuService(mc.DB).GetByID(uint(menuID))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{"data": menu, "success": true})
}

func (mc *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var input services.MenuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	createdBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		createdBy = int(auth.UserID)
	}

	menu, err := services.NewMenuService(mc.DB).Create(input, createdBy)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Menu created successfully",
		"data":    menu,
		"success": true,
	})
}

func (mc *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.MenuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	updatedBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		updatedBy = int(auth.UserID)
	}

	menu, err := services.NewMenuService(mc.DB).Update(uint(menuID), input, updatedBy)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{"message": "Menu updated successfully", "data": menu, "success": true})
}

// CheckMenuRoles reports whether any role grant still references the
// menu. The admin UI asks before offering the force delete.
func (mc *MenuController) CheckMenuRoles(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	hasRoles, err := services.NewMenuService(mc.DB).HasDependentRoles(uint(menuID))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{"success": true, "hasRoles": hasRoles})
}

// DeleteMenu removes only the one row. Children and grants are left
// for manual cleanup.
func (mc *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := services.NewMenuService(mc.DB).Delete(uint(menuID)); err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{"message": "Menu deleted successfully", "success": true})
}

// ForceDeleteMenu removes the menu, all its descendants and their
// grants in one transaction.
func (mc *MenuController) ForceDeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	deleted, err := services.NewMenuService(mc.DB).ForceDelete(uint(menuID))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{
		"message": "Menu and descendants deleted successfully",
		"deleted": deleted,
		"success": true,
	})
}
