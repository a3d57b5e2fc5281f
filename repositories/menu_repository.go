package repositories

import (
	"fiber-lims/models"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(DB *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: DB}
}

// WithTx returns a repository bound to the given transaction.
func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: tx}
}

func (r *MenuRepository) Create(menu *models.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) GetByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.First(&menu, id).Error
	return &menu, err
}

func (r *MenuRepository) GetAll() ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.Order("menu_order asc").Find(&menus).Error
	return menus, err
}

// GetRoots returns top-level menus with their ordered children.
func (r *MenuRepository) GetRoots() ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("menu_order asc")
		}).
		Where("parent_id IS NULL").
		Order("menu_order asc").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) GetChildren(parentID uint) ([]models.Menu, error) {
	var children []models.Menu
	err := r.DB.Where("parent_id = ?", parentID).Find(&children).Error
	return children, err
}

func (r *MenuRepository) Update(menu *models.Menu) error {
	return r.DB.Save(menu).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Menu{}, id).Error
}

// DeleteGrants removes every role and user grant for a menu.
func (r *MenuRepository) DeleteGrants(menuID uint) error {
	if err := r.DB.Where("menu_id = ?", menuID).Delete(&models.RoleMenu{}).Error; err != nil {
		return err
	}
	return r.DB.Where("menu_id = ?", menuID).Delete(&models.UserMenu{}).Error
}

func (r *MenuRepository) CountRoleGrants(menuID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.RoleMenu{}).Where("menu_id = ?", menuID).Count(&count).Error
	return count, err
}

// MenuIDsForRole returns the ids granted to a role via role_menus.
func (r *MenuRepository) MenuIDsForRole(roleID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&models.RoleMenu{}).
		Where("role_id = ?", roleID).
		Pluck("menu_id", &ids).Error
	return ids, err
}

// MenuIDsForUser returns the ids granted directly via user_menus.
func (r *MenuRepository) MenuIDsForUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&models.UserMenu{}).
		Where("user_id = ?", userID).
		Pluck("menu_id", &ids).Error
	return ids, err
}

// GetByIDs fetches menus by id ordered for display.
func (r *MenuRepository) GetByIDs(ids []uint) ([]models.Menu, error) {
	if len(ids) == 0 {
		return []models.Menu{}, nil
	}
	var menus []models.Menu
	err := r.DB.Where("id IN ?", ids).Order("menu_order asc").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) ReplaceRoleGrants(roleID uint, menuIDs []uint) error {
	if err := r.DB.Where("role_id = ?", roleID).Delete(&models.RoleMenu{}).Error; err != nil {
		return err
	}
	for _, menuID := range menuIDs {
		if err := r.DB.Create(&models.RoleMenu{RoleID: roleID, MenuID: menuID}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *MenuRepository) ReplaceUserGrants(userID uint, menuIDs []uint) error {
	if err := r.DB.Where("user_id = ?", userID).Delete(&models.UserMenu{}).Error; err != nil {
		return err
	}
	for _, menuID := range menuIDs {
		if err := r.DB.Create(&models.UserMenu{UserID: userID, MenuID: menuID}).Error; err != nil {
			return err
		}
	}
	return nil
}
