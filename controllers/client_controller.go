package controllers

import (
	"errors"
	"fmt"

	"fiber-lims/middleware"
	"fiber-lims/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ClientController struct {
	DB *gorm.DB
}

type clientInput struct {
	ID            uint   `json:"id"`
	ClientCode    string `json:"client_code" validate:"required,min=3"`
	ClientName    string `json:"client_name" validate:"required,min=3"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contact_person"`
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

func (c *ClientController) GetAllClients(ctx *fiber.Ctx) error {
	var clients []models.Client
	if err := c.DB.Find(&clients).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Clients found", "data": clients})
}

func (c *ClientController) GetClientByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Client
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client found", "data": result})
}

func (c *ClientController) CreateClient(ctx *fiber.Ctx) error {
	var input clientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	createdBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		createdBy = int(auth.UserID)
	}

	client := models.Client{
		ClientCode:    input.ClientCode,
		ClientName:    input.ClientName,
		Address1:      input.Address1,
		Address2:      input.Address2,
		City:          input.City,
		Country:       input.Country,
		Phone:         input.Phone,
		Email:         input.Email,
		ContactPerson: input.ContactPerson,
		CreatedBy:     createdBy,
	}

	if err := c.DB.Create(&client).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Client created successfully", "data": client})
}

func (c *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input clientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updatedBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		updatedBy = int(auth.UserID)
	}

	if err := c.DB.
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"client_name":    input.ClientName,
			"address1":       input.Address1,
			"address2":       input.Address2,
			"city":           input.City,
			"country":        input.Country,
			"phone":          input.Phone,
			"email":          input.Email,
			"contact_person": input.ContactPerson,
			"updated_by":     updatedBy,
		}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client updated successfully", "data": input})
}

func (c *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var client models.Client
	if err := c.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&client).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Client deleted successfully"})
}

// ExportClients streams the client master as an xlsx download.
func (c *ClientController) ExportClients(ctx *fiber.Ctx) error {
	var clients []models.Client
	if err := c.DB.Find(&clients).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Client Code", "Client Name", "Address", "City", "Country", "Phone", "Email", "Contact Person"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, client := range clients {
		values := []interface{}{
			client.ClientCode, client.ClientName, client.Address1, client.City,
			client.Country, client.Phone, client.Email, client.ContactPerson,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="clients.xlsx"`)
	return ctx.Send(buf.Bytes())
}

// CreateClientsFromExcel bulk-imports the client master. The first
// row is the header; rows missing code or name are skipped with a
// note in the response.
func (c *ClientController) CreateClientsFromExcel(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid excel file"})
	}

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	createdBy := 0
	if auth := middleware.GetAuthContext(ctx); auth != nil {
		createdBy = int(auth.UserID)
	}

	created := 0
	var skipped []string
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		get := func(idx int) string {
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}

		code, name := get(0), get(1)
		if code == "" || name == "" {
			skipped = append(skipped, fmt.Sprintf("row %d: missing client code or name", i+1))
			continue
		}

		client := models.Client{
			ClientCode:    code,
			ClientName:    name,
			Address1:      get(2),
			City:          get(3),
			Country:       get(4),
			Phone:         get(5),
			Email:         get(6),
			ContactPerson: get(7),
			CreatedBy:     createdBy,
		}
		if err := c.DB.Create(&client).Error; err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		created++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Client import finished",
		"created": created,
		"skipped": skipped,
	})
}
