package models

import "gorm.io/gorm"

type Menu struct {
	gorm.Model
	MenuName  string `json:"menu_name" gorm:"column:menu_name"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	MenuOrder int    `json:"menu_order" gorm:"column:menu_order"`
	ParentID  *uint  `json:"parent_id"`
	Parent    *Menu  `json:"-" gorm:"foreignKey:ParentID"`
	Children  []Menu `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// RoleMenu grants a menu to a role. Plain rows, removed for real when
// a menu is force-deleted.
type RoleMenu struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	RoleID uint `json:"role_id" gorm:"index"`
	MenuID uint `json:"menu_id" gorm:"index"`
}

func (RoleMenu) TableName() string {
	return "role_menus"
}

// UserMenu grants a menu directly to a user, bypassing the role.
type UserMenu struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"index"`
	MenuID uint `json:"menu_id" gorm:"index"`
}

func (UserMenu) TableName() string {
	return "user_menus"
}
