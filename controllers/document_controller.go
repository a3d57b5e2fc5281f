package controllers

import (
	"errors"
	"time"

	"fiber-lims/controllers/idgen"
	"fiber-lims/logger"
	"fiber-lims/middleware"
	"fiber-lims/models"
	"fiber-lims/services"
	"fiber-lims/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

func (c *DocumentController) GetAllDocuments(ctx *fiber.Ctx) error {
	var documents []models.Document
	query := c.DB.Order("created_at desc")
	if orderID := ctx.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if docType := ctx.Query("doc_type"); docType != "" {
		query = query.Where("doc_type = ?", docType)
	}
	if err := query.Find(&documents).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Documents found", "data": documents})
}

func (c *DocumentController) GetDocumentByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var document models.Document
	if err := c.DB.First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Document found", "data": document})
}

// IssueDocument registers a new document against an order. The doc
// number comes from the snowflake node so it is unique without a
// round-trip.
func (c *DocumentController) IssueDocument(ctx *fiber.Ctx) error {
	var input struct {
		OrderID uint   `json:"order_id" validate:"required"`
		DocType string `json:"doc_type" validate:"required,oneof=report certificate delivery_note"`
		Title   string `json:"title" validate:"required"`
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

	issuedBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		issuedBy = int(auth.UserID)
	}

	now := time.Now()
	document := models.Document{
		DocNo:    types.SnowflakeID(idgen.GenerateID()),
		OrderID:  input.OrderID,
		DocType:  input.DocType,
		Title:    input.Title,
		IssuedBy: issuedBy,
		IssuedAt: &now,
	}

	if err := c.DB.Create(&document).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Document issued successfully", "data": document})
}

// SendDocument mails the client a notification that the document is
// ready. Failing to send leaves the document untouched.
func (c *DocumentController) SendDocument(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var document models.Document
	if err := c.DB.First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.Order
	if err := c.DB.First(&order, document.OrderID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	mailer := services.NewMailer()
	if err := mailer.SendDocumentIssued(input.Email, document.DocNo.String(), document.DocType, order.OrderNo); err != nil {
		logger.Get().WithError(err).Error("failed to send document mail")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send document mail"})
	}

	now := time.Now()
	document.SentTo = input.Email
	document.SentAt = &now
	document.Status = "sent"
	c.DB.Save(&document)

	return ctx.JSON(fiber.Map{"success": true, "message": "Document sent successfully", "data": document})
}
