package services

import (
	"errors"

	"fiber-lims/apperrors"
	"fiber-lims/models"
	"fiber-lims/repositories"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AuthzService resolves which menus a user may see and whether a role
// carries a named permission. Missing identities resolve to "nothing
// visible" / "denied", never to a hard error; only store failures do.
type AuthzService struct {
	DB    *gorm.DB
	menus *repositories.MenuRepository
	users *repositories.UserRepository
}

func NewAuthzService(db *gorm.DB) *AuthzService {
	return &AuthzService{
		DB:    db,
		menus: repositories.NewMenuRepository(db),
		users: repositories.NewUserRepository(db),
	}
}

// MenusForUser returns the union of the user's direct menu grants and
// the grants of the user's role, deduplicated and ordered by
// menu_order. An unknown user gets an empty list.
func (s *AuthzService) MenusForUser(email string) ([]models.Menu, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Menu{}, nil
		}
		return nil, apperrors.Store("failed to look up user", err)
	}

	ids, err := s.menus.MenuIDsForUser(user.ID)
	if err != nil {
		return nil, apperrors.Store("failed to resolve user menu grants", err)
	}

	if user.RoleID != nil {
		roleIDs, err := s.menus.MenuIDsForRole(*user.RoleID)
		if err != nil {
			return nil, apperrors.Store("failed to resolve role menu grants", err)
		}
		for _, id := range roleIDs {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}

	menus, err := s.menus.GetByIDs(ids)
	if err != nil {
		return nil, apperrors.Store("failed to fetch menus", err)
	}
	return menus, nil
}

// MenusForRole returns the menus granted to a single role, ordered by
// menu_order.
func (s *AuthzService) MenusForRole(roleID uint) ([]models.Menu, error) {
	ids, err := s.menus.MenuIDsForRole(roleID)
	if err != nil {
		return nil, apperrors.Store("failed to resolve role menu grants", err)
	}
	menus, err := s.menus.GetByIDs(ids)
	if err != nil {
		return nil, apperrors.Store("failed to fetch menus", err)
	}
	return menus, nil
}

// HasPermission reports whether the user's role carries the named
// permission. Missing user, missing role or no matching grant all
// resolve to false with no error; only a store failure is an error.
func (s *AuthzService) HasPermission(userID uint, permissionName string) (bool, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Store("failed to look up user", err)
	}

	if user.RoleID == nil {
		return false, nil
	}

	var count int64
	err := s.DB.Table("permissions").
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Where("rp.role_id = ? AND permissions.name = ?", *user.RoleID, permissionName).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Store("failed to check permission", err)
	}

	return count > 0, nil
}
