package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fiber-lims/models"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	var orderCount, sampleCount, clientCount, openInvoiceCount int64

	if err := c.DB.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.Sample{}).Count(&sampleCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.Client{}).Count(&clientCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.Invoice{}).Where("status <> ?", models.InvoiceStatusPaid).Count(&openInvoiceCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sql := `WITH ord AS (
			SELECT o.id, o.order_no AS no_ref, o.status, o.created_at AS trans_date
			FROM orders o
			WHERE o.status <> 'completed' AND o.deleted_at IS NULL
		), pi AS (
			SELECT p.id, p.pi_number AS no_ref, p.status, p.created_at AS trans_date
			FROM pi_hantaran p
			WHERE p.status <> 'paid' AND p.deleted_at IS NULL
		)

		SELECT *, 'order' AS trans_type FROM ord
		UNION ALL
		SELECT *, 'invoice' AS trans_type FROM pi ORDER BY trans_date DESC`

	var transactions []struct {
		ID        uint   `json:"id"`
		NoRef     string `json:"no_ref"`
		Status    string `json:"status"`
		TransDate string `json:"trans_date"`
		TransType string `json:"trans_type"`
	}

	if err := c.DB.Raw(sql).Scan(&transactions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if transactions == nil {
		transactions = []struct {
			ID        uint   `json:"id"`
			NoRef     string `json:"no_ref"`
			Status    string `json:"status"`
			TransDate string `json:"trans_date"`
			TransType string `json:"trans_type"`
		}{}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard found",
		"data": fiber.Map{
			"counts": fiber.Map{
				"orders":        orderCount,
				"samples":       sampleCount,
				"clients":       clientCount,
				"open_invoices": openInvoiceCount,
			},
			"transactions": transactions,
		},
	})
}
