package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"unique"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"unique"`
	Department string `json:"department"`
	Position   string `json:"position"`
	RoleID     *uint  `json:"role_id"`
	RoleRef    *Role  `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}

// Role Model
type Role struct {
	gorm.Model
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions;"`
}

// Permission Model
type Permission struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
}
