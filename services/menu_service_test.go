package services

import (
	"testing"

	"fiber-lims/apperrors"
	"fiber-lims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCreateRejectsBlankName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	menu, err := svc.Create(MenuInput{MenuName: "   "}, 1)
	require.Error(t, err)
	assert.Nil(t, menu)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	var count int64
	require.NoError(t, db.Model(&models.Menu{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMenuCreateAcceptsUnknownParent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	parentID := uint(999)
	menu, err := svc.Create(MenuInput{MenuName: "Orphan", ParentID: &parentID}, 1)
	require.NoError(t, err)
	require.NotNil(t, menu.ParentID)
	assert.Equal(t, parentID, *menu.ParentID)
}

func TestMenuGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	_, err := svc.GetByID(42)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestMenuDeleteKeepsChildrenAndGrants(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	root := createMenu(t, db, "Settings", 1, nil)
	child := createMenu(t, db, "Users", 2, &root.ID)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: 1, MenuID: root.ID}).Error)

	require.NoError(t, svc.Delete(root.ID))

	_, err := svc.GetByID(root.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// Child survives with a dangling parent reference.
	got, err := svc.GetByID(child.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, root.ID, *got.ParentID)

	// Grants stay behind on the plain delete path.
	hasRoles, err := svc.HasDependentRoles(root.ID)
	require.NoError(t, err)
	assert.True(t, hasRoles)
}

func TestMenuDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	err := svc.Delete(42)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestForceDeleteLeaf(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	root := createMenu(t, db, "Settings", 1, nil)
	child := createMenu(t, db, "Users", 2, &root.ID)

	deleted, err := svc.ForceDelete(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = svc.GetByID(child.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = svc.GetByID(root.ID)
	assert.NoError(t, err)
}

func TestForceDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	root := createMenu(t, db, "Settings", 1, nil)
	child1 := createMenu(t, db, "Users", 1, &root.ID)
	child2 := createMenu(t, db, "Roles", 2, &root.ID)
	grandchild := createMenu(t, db, "Role Menus", 1, &child2.ID)

	var role models.Role
	role.Name = "administrator"
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: root.ID}).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: grandchild.ID}).Error)
	require.NoError(t, db.Create(&models.UserMenu{UserID: 7, MenuID: child1.ID}).Error)

	deleted, err := svc.ForceDelete(root.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, deleted)

	for _, id := range []uint{root.ID, child1.ID, child2.ID, grandchild.ID} {
		_, err := svc.GetByID(id)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound), "menu %d should be gone", id)
	}

	var roleGrants, userGrants int64
	require.NoError(t, db.Model(&models.RoleMenu{}).Count(&roleGrants).Error)
	require.NoError(t, db.Model(&models.UserMenu{}).Count(&userGrants).Error)
	assert.Equal(t, int64(0), roleGrants)
	assert.Equal(t, int64(0), userGrants)

	menus, err := NewAuthzService(db).MenusForRole(role.ID)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestForceDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	deleted, err := svc.ForceDelete(42)
	require.Error(t, err)
	assert.Equal(t, 0, deleted)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestHasDependentRoles(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	menu := createMenu(t, db, "Orders", 1, nil)

	hasRoles, err := svc.HasDependentRoles(menu.ID)
	require.NoError(t, err)
	assert.False(t, hasRoles)

	require.NoError(t, db.Create(&models.RoleMenu{RoleID: 1, MenuID: menu.ID}).Error)

	// The check is read-only; asking twice gives the same answer.
	for i := 0; i < 2; i++ {
		hasRoles, err = svc.HasDependentRoles(menu.ID)
		require.NoError(t, err)
		assert.True(t, hasRoles)
	}
}

func TestMenuUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	menu := createMenu(t, db, "Orders", 1, nil)

	updated, err := svc.Update(menu.ID, MenuInput{MenuName: "Sample Orders", Path: "/orders", MenuOrder: 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, "Sample Orders", updated.MenuName)
	assert.Equal(t, 5, updated.MenuOrder)
	assert.Equal(t, 3, updated.UpdatedBy)

	_, err = svc.Update(42, MenuInput{MenuName: "X"}, 3)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestMenuTreeOrdersChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	root := createMenu(t, db, "Settings", 2, nil)
	createMenu(t, db, "Dashboard", 1, nil)
	createMenu(t, db, "Roles", 2, &root.ID)
	createMenu(t, db, "Users", 1, &root.ID)

	tree, err := svc.Tree()
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Dashboard", tree[0].MenuName)
	assert.Equal(t, "Settings", tree[1].MenuName)

	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, "Users", tree[1].Children[0].MenuName)
	assert.Equal(t, "Roles", tree[1].Children[1].MenuName)
}
