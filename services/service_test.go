package services

import (
	"testing"

	"fiber-lims/database"
	"fiber-lims/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createMenu(t *testing.T, db *gorm.DB, name string, order int, parentID *uint) models.Menu {
	t.Helper()
	menu := models.Menu{MenuName: name, Path: "/" + name, MenuOrder: order, ParentID: parentID}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func createUser(t *testing.T, db *gorm.DB, username, email string, roleID *uint) models.User {
	t.Helper()
	user := models.User{Username: username, Name: username, Email: email, Password: "secret", RoleID: roleID}
	require.NoError(t, db.Create(&user).Error)
	return user
}
