package controllers

import (
	"errors"

	"fiber-lims/apperrors"
	"fiber-lims/models"
	"fiber-lims/repositories"
	"fiber-lims/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(DB *gorm.DB) *RoleController {
	return &RoleController{DB: DB}
}

func (c *RoleController) GetAllRoles(ctx *fiber.Ctx) error {
	var roles []models.Role
	if err := c.DB.Preload("Permissions").Find(&roles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": roles, "success": true})
}

func (c *RoleController) GetRoleByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var role models.Role
	if err := c.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": role, "success": true})
}

func (c *RoleController) CreateRole(ctx *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required,min=3"`
		Description string `json:"description"`
		Permissions []uint `json:"permissions"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	role := models.Role{Name: input.Name, Description: input.Description}
	if err := c.DB.Create(&role).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(input.Permissions) > 0 {
		var perms []models.Permission
		if err := c.DB.Where("id IN ?", input.Permissions).Find(&perms).Error; err == nil {
			c.DB.Model(&role).Association("Permissions").Replace(perms)
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Role created successfully",
		"data":    role,
	})
}

func (c *RoleController) UpdateRole(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var role models.Role
	if err := c.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Permissions []uint `json:"permissions"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	role.Name = input.Name
	role.Description = input.Description
	if err := c.DB.Save(&role).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var perms []models.Permission
	if len(input.Permissions) > 0 {
		if err := c.DB.Where("id IN ?", input.Permissions).Find(&perms).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	c.DB.Model(&role).Association("Permissions").Replace(perms)

	return ctx.JSON(fiber.Map{"success": true, "message": "Role updated successfully", "data": role})
}

func (c *RoleController) DeleteRole(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var role models.Role
	if err := c.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&role).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Role deleted successfully"})
}

// GetRoleMenus returns the menus granted to one role, ordered for
// display.
func (c *RoleController) GetRoleMenus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	menus, err := services.NewAuthzService(c.DB).MenusForRole(uint(id))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{"data": menus, "success": true})
}

// UpdateRoleMenus replaces the role's menu grants.
func (c *RoleController) UpdateRoleMenus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		MenuIDs []uint `json:"menu_ids"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var role models.Role
	if err := c.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := repositories.NewMenuRepository(c.DB).ReplaceRoleGrants(role.ID, body.MenuIDs); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update role menus"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Role menus updated successfully"})
}
