package database

import (
	"fiber-lims/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Menu{},
		&models.RoleMenu{},
		&models.UserMenu{},
		&models.Client{},
		&models.Order{},
		&models.Sample{},
		&models.Invoice{},
		&models.Document{},
	)
}
