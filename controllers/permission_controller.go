package controllers

import (
	"fiber-lims/apperrors"
	"fiber-lims/middleware"
	"fiber-lims/models"
	"fiber-lims/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PermissionController struct {
	DB *gorm.DB
}

func NewPermissionController(DB *gorm.DB) *PermissionController {
	return &PermissionController{DB: DB}
}

func (c *PermissionController) GetAllPermissions(ctx *fiber.Ctx) error {
	var permissions []models.Permission
	if err := c.DB.Find(&permissions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": permissions, "success": true})
}

// CheckPermission answers whether the calling user's role carries the
// named permission. A missing grant is a plain false, not an error.
func (c *PermissionController) CheckPermission(ctx *fiber.Ctx) error {
	permissionName := ctx.Query("permission")
	if permissionName == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "permission query is required"})
	}

	auth := middleware.GetAuthContext(ctx)
	if auth == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	hasPermission, err := services.NewAuthzService(c.DB).HasPermission(auth.UserID, permissionName)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{"error": apperrors.Message(err)})
	}

	return ctx.JSON(fiber.Map{"success": true, "hasPermission": hasPermission})
}
