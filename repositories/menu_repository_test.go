package repositories

import (
	"testing"

	"fiber-lims/database"
	"fiber-lims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *MenuRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return NewMenuRepository(db)
}

func TestGetByIDsOrdersByMenuOrder(t *testing.T) {
	repo := newTestRepo(t)

	a := models.Menu{MenuName: "Invoices", MenuOrder: 3}
	b := models.Menu{MenuName: "Dashboard", MenuOrder: 1}
	c := models.Menu{MenuName: "Orders", MenuOrder: 2}
	for _, m := range []*models.Menu{&a, &b, &c} {
		require.NoError(t, repo.Create(m))
	}

	menus, err := repo.GetByIDs([]uint{a.ID, b.ID, c.ID})
	require.NoError(t, err)
	require.Len(t, menus, 3)
	assert.Equal(t, "Dashboard", menus[0].MenuName)
	assert.Equal(t, "Orders", menus[1].MenuName)
	assert.Equal(t, "Invoices", menus[2].MenuName)

	empty, err := repo.GetByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReplaceRoleGrants(t *testing.T) {
	repo := newTestRepo(t)

	m1 := models.Menu{MenuName: "Orders", MenuOrder: 1}
	m2 := models.Menu{MenuName: "Invoices", MenuOrder: 2}
	require.NoError(t, repo.Create(&m1))
	require.NoError(t, repo.Create(&m2))

	require.NoError(t, repo.ReplaceRoleGrants(5, []uint{m1.ID}))
	ids, err := repo.MenuIDsForRole(5)
	require.NoError(t, err)
	assert.Equal(t, []uint{m1.ID}, ids)

	require.NoError(t, repo.ReplaceRoleGrants(5, []uint{m2.ID}))
	ids, err = repo.MenuIDsForRole(5)
	require.NoError(t, err)
	assert.Equal(t, []uint{m2.ID}, ids)

	require.NoError(t, repo.ReplaceRoleGrants(5, nil))
	ids, err = repo.MenuIDsForRole(5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDeleteGrantsRemovesBothKinds(t *testing.T) {
	repo := newTestRepo(t)

	menu := models.Menu{MenuName: "Orders", MenuOrder: 1}
	require.NoError(t, repo.Create(&menu))
	require.NoError(t, repo.DB.Create(&models.RoleMenu{RoleID: 1, MenuID: menu.ID}).Error)
	require.NoError(t, repo.DB.Create(&models.UserMenu{UserID: 2, MenuID: menu.ID}).Error)

	require.NoError(t, repo.DeleteGrants(menu.ID))

	count, err := repo.CountRoleGrants(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	userIDs, err := repo.MenuIDsForUser(2)
	require.NoError(t, err)
	assert.Empty(t, userIDs)
}
