package services

import (
	"errors"
	"fmt"
	"strings"

	"fiber-lims/apperrors"
	"fiber-lims/models"
	"fiber-lims/repositories"

	"gorm.io/gorm"
)

// MenuService manages the menu forest and its grants.
type MenuService struct {
	DB   *gorm.DB
	repo *repositories.MenuRepository
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db, repo: repositories.NewMenuRepository(db)}
}

type MenuInput struct {
	MenuName  string `json:"menu_name" validate:"required"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	MenuOrder int    `json:"menu_order"`
	ParentID  *uint  `json:"parent_id"`
}

// Create inserts a new menu node. parent_id is deliberately not
// checked against existing rows; the admin UI is trusted to send a
// valid parent and orphan nodes are tolerated by every read path.
func (s *MenuService) Create(input MenuInput, createdBy int) (*models.Menu, error) {
	if strings.TrimSpace(input.MenuName) == "" {
		return nil, apperrors.Validation("menu_name is required")
	}

	menu := models.Menu{
		MenuName:  input.MenuName,
		Path:      input.Path,
		Icon:      input.Icon,
		MenuOrder: input.MenuOrder,
		ParentID:  input.ParentID,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(&menu); err != nil {
		return nil, apperrors.Store("failed to create menu", err)
	}
	return &menu, nil
}

func (s *MenuService) GetByID(id uint) (*models.Menu, error) {
	menu, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("menu %d not found", id)
		}
		return nil, apperrors.Store("failed to fetch menu", err)
	}
	return menu, nil
}

func (s *MenuService) GetAll() ([]models.Menu, error) {
	menus, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.Store("failed to fetch menus", err)
	}
	return menus, nil
}

// Tree returns root menus with their ordered children.
func (s *MenuService) Tree() ([]models.Menu, error) {
	menus, err := s.repo.GetRoots()
	if err != nil {
		return nil, apperrors.Store("failed to fetch menu tree", err)
	}
	return menus, nil
}

func (s *MenuService) Update(id uint, input MenuInput, updatedBy int) (*models.Menu, error) {
	if strings.TrimSpace(input.MenuName) == "" {
		return nil, apperrors.Validation("menu_name is required")
	}

	menu, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	menu.MenuName = input.MenuName
	menu.Path = input.Path
	menu.Icon = input.Icon
	menu.MenuOrder = input.MenuOrder
	menu.ParentID = input.ParentID
	menu.UpdatedBy = updatedBy

	if err := s.repo.Update(menu); err != nil {
		return nil, apperrors.Store("failed to update menu", err)
	}
	return menu, nil
}

// HasDependentRoles reports whether any role grant still references
// the menu. Callers use it as a pre-delete guard; deletion itself is
// not blocked here.
func (s *MenuService) HasDependentRoles(menuID uint) (bool, error) {
	count, err := s.repo.CountRoleGrants(menuID)
	if err != nil {
		return false, apperrors.Store("failed to count role grants", err)
	}
	return count > 0, nil
}

// Delete removes a single menu row. Children keep their parent_id and
// grants stay behind; this is the conservative manual path.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.Store("failed to delete menu", err)
	}
	return nil
}

// ForceDelete removes a menu together with every descendant and all
// their role/user grants, leaves first. The whole cascade runs in one
// transaction, so a failing descendant rolls everything back and the
// error names the node that failed. Returns the number of removed
// menus.
func (s *MenuService) ForceDelete(id uint) (int, error) {
	if _, err := s.GetByID(id); err != nil {
		return 0, err
	}

	deleted := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		n, err := deleteSubtree(repo, id)
		deleted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// deleteSubtree removes the node's descendants post-order, then the
// node's grants, then the node itself. A node that vanished mid-walk
// simply contributes nothing: GORM deletes of absent rows affect zero
// rows and are not errors.
func deleteSubtree(repo *repositories.MenuRepository, id uint) (int, error) {
	children, err := repo.GetChildren(id)
	if err != nil {
		return 0, apperrors.Store(fmt.Sprintf("failed to list children of menu %d", id), err)
	}

	deleted := 0
	for _, child := range children {
		n, err := deleteSubtree(repo, child.ID)
		deleted += n
		if err != nil {
			return deleted, err
		}
	}

	if err := repo.DeleteGrants(id); err != nil {
		return deleted, apperrors.Store(fmt.Sprintf("failed to delete grants of menu %d", id), err)
	}
	if err := repo.Delete(id); err != nil {
		return deleted, apperrors.Store(fmt.Sprintf("failed to delete menu %d", id), err)
	}
	return deleted + 1, nil
}
