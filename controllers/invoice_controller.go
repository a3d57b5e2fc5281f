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

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

func (c *InvoiceController) GetAllInvoices(ctx *fiber.Ctx) error {
	var invoices []models.Invoice
	query := c.DB.Order("created_at desc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderNo := ctx.Query("order_no"); orderNo != "" {
		query = query.Where("sample_order_no = ?", orderNo)
	}
	if err := query.Find(&invoices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Invoices found", "data": invoices})
}

func (c *InvoiceController) GetInvoiceByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Invoice found", "data": invoice})
}

func (c *InvoiceController) CreateInvoice(ctx *fiber.Ctx) error {
	var input struct {
		SampleOrderNo string  `json:"sample_order_no" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		Currency      string  `json:"currency"`
		Remarks       string  `json:"remarks"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The link to orders is the order-number string, not a foreign
	// key. The order must still exist when the PI is raised.
	var order models.Order
	if err := c.DB.Where("order_no = ?", input.SampleOrderNo).First(&order).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	var seq int64
	c.DB.Model(&models.Invoice{}).Count(&seq)

	currency := input.Currency
	if currency == "" {
		currency = "IDR"
	}

	createdBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		createdBy = int(auth.UserID)
	}

	invoice := models.Invoice{
		PINumber:      fmt.Sprintf("PI-%s-%05d", time.Now().Format("200601"), seq+1),
		SampleOrderNo: input.SampleOrderNo,
		Amount:        input.Amount,
		Currency:      currency,
		Status:        models.InvoiceStatusDraft,
		Remarks:       input.Remarks,
		CreatedBy:     createdBy,
	}

	if err := c.DB.Create(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Invoice created successfully", "data": invoice})
}

func (c *InvoiceController) UpdateInvoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if invoice.Status == models.InvoiceStatusPaid {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Paid invoices cannot be changed"})
	}

	var input struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Status   string  `json:"status"`
		Remarks  string  `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Amount > 0 {
		invoice.Amount = input.Amount
	}
	if input.Currency != "" {
		invoice.Currency = input.Currency
	}
	invoice.Remarks = input.Remarks

	switch input.Status {
	case "":
	case models.InvoiceStatusIssued:
		now := time.Now()
		invoice.Status = models.InvoiceStatusIssued
		invoice.IssueDate = &now
	case models.InvoiceStatusPaid:
		if invoice.Status != models.InvoiceStatusIssued {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only issued invoices can be marked paid"})
		}
		invoice.Status = models.InvoiceStatusPaid
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	if auth := middleware.GetAuthContext(ctx); auth != nil {
		invoice.UpdatedBy = int(auth.UserID)
	}

	if err := c.DB.Save(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Invoice updated successfully", "data": invoice})
}

func (c *InvoiceController) DeleteInvoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if invoice.Status != models.InvoiceStatusDraft {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only draft invoices can be deleted"})
	}

	if err := c.DB.Delete(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Invoice deleted successfully"})
}
