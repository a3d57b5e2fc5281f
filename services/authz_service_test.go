package services

import (
	"testing"

	"fiber-lims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenusForUserUnionDeduped(t *testing.T) {
	db := newTestDB(t)

	dashboard := createMenu(t, db, "Dashboard", 1, nil)
	orders := createMenu(t, db, "Orders", 2, nil)
	invoices := createMenu(t, db, "Invoices", 3, nil)

	role := models.Role{Name: "lab_staff"}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: dashboard.ID}).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: invoices.ID}).Error)

	user := createUser(t, db, "ani", "ani@local", &role.ID)
	require.NoError(t, db.Create(&models.UserMenu{UserID: user.ID, MenuID: dashboard.ID}).Error)
	require.NoError(t, db.Create(&models.UserMenu{UserID: user.ID, MenuID: orders.ID}).Error)

	menus, err := NewAuthzService(db).MenusForUser("ani@local")
	require.NoError(t, err)
	require.Len(t, menus, 3)
	assert.Equal(t, "Dashboard", menus[0].MenuName)
	assert.Equal(t, "Orders", menus[1].MenuName)
	assert.Equal(t, "Invoices", menus[2].MenuName)
}

func TestMenusForUserUnknownEmail(t *testing.T) {
	db := newTestDB(t)

	menus, err := NewAuthzService(db).MenusForUser("nobody@local")
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestMenusForUserWithoutRole(t *testing.T) {
	db := newTestDB(t)

	orders := createMenu(t, db, "Orders", 1, nil)
	createMenu(t, db, "Invoices", 2, nil)

	user := createUser(t, db, "budi", "budi@local", nil)
	require.NoError(t, db.Create(&models.UserMenu{UserID: user.ID, MenuID: orders.ID}).Error)

	menus, err := NewAuthzService(db).MenusForUser("budi@local")
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Orders", menus[0].MenuName)
}

func TestMenusForRole(t *testing.T) {
	db := newTestDB(t)

	orders := createMenu(t, db, "Orders", 2, nil)
	dashboard := createMenu(t, db, "Dashboard", 1, nil)

	role := models.Role{Name: "lab_staff"}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: orders.ID}).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: dashboard.ID}).Error)

	menus, err := NewAuthzService(db).MenusForRole(role.ID)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Dashboard", menus[0].MenuName)
	assert.Equal(t, "Orders", menus[1].MenuName)
}

func TestMenusForRoleWithoutGrants(t *testing.T) {
	db := newTestDB(t)

	role := models.Role{Name: "empty"}
	require.NoError(t, db.Create(&role).Error)

	menus, err := NewAuthzService(db).MenusForRole(role.ID)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestHasPermission(t *testing.T) {
	db := newTestDB(t)

	role := models.Role{
		Name:        "administrator",
		Permissions: []models.Permission{{Name: "menu.manage"}},
	}
	require.NoError(t, db.Create(&role).Error)

	admin := createUser(t, db, "admin", "admin@local", &role.ID)
	roleless := createUser(t, db, "guest", "guest@local", nil)

	svc := NewAuthzService(db)

	allowed, err := svc.HasPermission(admin.ID, "menu.manage")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.HasPermission(admin.ID, "user.manage")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Missing identity is a denial, not an error.
	allowed, err = svc.HasPermission(9999, "menu.manage")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.HasPermission(roleless.ID, "menu.manage")
	require.NoError(t, err)
	assert.False(t, allowed)
}
