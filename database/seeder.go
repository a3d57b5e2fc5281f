package database

import (
	"errors"

	"fiber-lims/logger"
	"fiber-lims/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedPermissions(db)
	SeedRoles(db)
	SeedAdminUser(db)
	SeedMenus(db)
}

func SeedPermissions(db *gorm.DB) {
	permissions := []models.Permission{
		{Name: "menu.manage", Description: "Create, update and delete menus"},
		{Name: "user.manage", Description: "Manage users and role assignment"},
		{Name: "order.manage", Description: "Manage orders and samples"},
		{Name: "invoice.manage", Description: "Manage proforma invoices"},
		{Name: "document.issue", Description: "Issue and send documents"},
	}

	for _, p := range permissions {
		var existing models.Permission
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&p)
			}
		}
	}
}

func SeedRoles(db *gorm.DB) {
	var admin models.Role
	if err := db.Where("name = ?", "administrator").First(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		admin = models.Role{Name: "administrator", Description: "Full access"}
		if err := db.Create(&admin).Error; err != nil {
			logger.Get().WithError(err).Error("failed to seed administrator role")
			return
		}
	}

	var permissions []models.Permission
	if err := db.Find(&permissions).Error; err == nil {
		db.Model(&admin).Association("Permissions").Replace(permissions)
	}

	var staff models.Role
	if err := db.Where("name = ?", "lab_staff").First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&models.Role{Name: "lab_staff", Description: "Order and sample handling"})
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	var admin models.Role
	if err := db.Where("name = ?", "administrator").First(&admin).Error; err != nil {
		logger.Get().WithError(err).Error("administrator role missing, skipping admin user seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Get().WithError(err).Error("failed to hash admin password")
		return
	}

	user := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@local",
		RoleID:   &admin.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		logger.Get().WithError(err).Error("failed to seed admin user")
	}
}

// SeedMenus creates the default navigation tree and grants the whole
// tree to the administrator role.
func SeedMenus(db *gorm.DB) {
	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count > 0 {
		return
	}

	roots := []struct {
		menu     models.Menu
		children []models.Menu
	}{
		{
			menu: models.Menu{MenuName: "Dashboard", Path: "/dashboard", Icon: "LayoutDashboardIcon", MenuOrder: 1},
		},
		{
			menu: models.Menu{MenuName: "Orders", Path: "/orders", Icon: "InboxIcon", MenuOrder: 2},
			children: []models.Menu{
				{MenuName: "Order List", Path: "/orders/list", MenuOrder: 1},
				{MenuName: "Samples", Path: "/orders/samples", MenuOrder: 2},
			},
		},
		{
			menu: models.Menu{MenuName: "Billing", Path: "/billing", Icon: "ReceiptIcon", MenuOrder: 3},
			children: []models.Menu{
				{MenuName: "Proforma Invoices", Path: "/billing/pi", MenuOrder: 1},
				{MenuName: "Documents", Path: "/billing/documents", MenuOrder: 2},
			},
		},
		{
			menu: models.Menu{MenuName: "Administration", Path: "/admin", Icon: "SettingsIcon", MenuOrder: 4},
			children: []models.Menu{
				{MenuName: "Users", Path: "/admin/users", MenuOrder: 1},
				{MenuName: "Roles", Path: "/admin/roles", MenuOrder: 2},
				{MenuName: "Menus", Path: "/admin/menus", MenuOrder: 3},
			},
		},
	}

	var seeded []models.Menu
	for _, r := range roots {
		menu := r.menu
		if err := db.Create(&menu).Error; err != nil {
			logger.Get().WithError(err).Error("failed to seed menu")
			continue
		}
		seeded = append(seeded, menu)
		for _, child := range r.children {
			child.ParentID = &menu.ID
			if err := db.Create(&child).Error; err == nil {
				seeded = append(seeded, child)
			}
		}
	}

	var admin models.Role
	if err := db.Where("name = ?", "administrator").First(&admin).Error; err != nil {
		return
	}
	for _, m := range seeded {
		db.Create(&models.RoleMenu{RoleID: admin.ID, MenuID: m.ID})
	}
}
