package controllers

import (
	"errors"
	"fmt"
	"time"

	"fiber-lims/middleware"
	"fiber-lims/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SampleController struct {
	DB *gorm.DB
}

func NewSampleController(db *gorm.DB) *SampleController {
	return &SampleController{DB: db}
}

func (c *SampleController) GetAllSamples(ctx *fiber.Ctx) error {
	var samples []models.Sample
	query := c.DB.Order("created_at desc")
	if orderID := ctx.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if err := query.Find(&samples).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Samples found", "data": samples})
}

func (c *SampleController) GetSampleByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sample models.Sample
	if err := c.DB.First(&sample, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sample not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sample found", "data": sample})
}

func (c *SampleController) CreateSample(ctx *fiber.Ctx) error {
	var input struct {
		OrderID     uint   `json:"order_id" validate:"required"`
		Description string `json:"description" validate:"required"`
		SampleType  string `json:"sample_type"`
		Quantity    int    `json:"quantity"`
		Uom         string `json:"uom"`
		Condition   string `json:"condition"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.Order
	if err := c.DB.First(&order, input.OrderID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	var seq int64
	c.DB.Model(&models.Sample{}).Where("order_id = ?", input.OrderID).Count(&seq)

	now := time.Now()
	createdBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		createdBy = int(auth.UserID)
	}

	sample := models.Sample{
		SampleNo:     fmt.Sprintf("%s-S%03d", order.OrderNo, seq+1),
		OrderID:      input.OrderID,
		Description:  input.Description,
		SampleType:   input.SampleType,
		Quantity:     input.Quantity,
		Uom:          input.Uom,
		ReceivedDate: &now,
		Condition:    input.Condition,
		CreatedBy:    createdBy,
	}

	if err := c.DB.Create(&sample).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Sample created successfully", "data": sample})
}

func (c *SampleController) UpdateSample(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sample models.Sample
	if err := c.DB.First(&sample, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sample not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Description string `json:"description"`
		SampleType  string `json:"sample_type"`
		Quantity    int    `json:"quantity"`
		Uom         string `json:"uom"`
		Condition   string `json:"condition"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sample.Description = input.Description
	sample.SampleType = input.SampleType
	sample.Quantity = input.Quantity
	sample.Uom = input.Uom
	sample.Condition = input.Condition
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		sample.UpdatedBy = int(auth.UserID)
	}

	if err := c.DB.Save(&sample).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Sample updated successfully", "data": sample})
}

func (c *SampleController) DeleteSample(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sample models.Sample
	if err := c.DB.First(&sample, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sample not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&sample).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Sample deleted successfully"})
}
