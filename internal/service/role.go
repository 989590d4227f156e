package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type RoleService interface {
	ExistByName(name string) (bool, error)
	Create(ctx context.Context, role *models.Role, permissionIDs []int64) (*models.Role, error)
	Update(ctx context.Context, role *models.Role, permissionIDs []int64) (*models.Role, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.Role, error)
	FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error)
}

type roleService struct {
	repo           repository.RoleRepository
	permissionRepo repository.PermissionRepository
	logger         *zap.Logger
}

func NewRoleService(repo repository.RoleRepository, permissionRepo repository.PermissionRepository, logger *zap.Logger) RoleService {
	return &roleService{repo: repo, permissionRepo: permissionRepo, logger: logger}
}

func (s *roleService) ExistByName(name string) (bool, error) {
	return s.repo.ExistsByName(name)
}

// Create stores the role keeping only the permissions that exist; unknown
// permission ids are dropped.
func (s *roleService) Create(ctx context.Context, role *models.Role, permissionIDs []int64) (*models.Role, error) {
	permissions, err := s.existingPermissions(permissionIDs)
	if err != nil {
		return nil, err
	}

	if login, ok := token.CurrentUserLogin(ctx); ok {
		role.CreatedBy = login
	}

	if err := s.repo.Create(role); err != nil {
		s.logger.Error("Failed to create role", zap.Error(err))
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	if err := s.repo.ReplacePermissions(role.ID, permissionIDsOf(permissions)); err != nil {
		return nil, fmt.Errorf("failed to associate permissions: %w", err)
	}
	role.Permissions = permissions
	return role, nil
}

// Update returns nil when the role does not exist.
func (s *roleService) Update(ctx context.Context, role *models.Role, permissionIDs []int64) (*models.Role, error) {
	existing, err := s.repo.GetByID(role.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	permissions, err := s.existingPermissions(permissionIDs)
	if err != nil {
		return nil, err
	}

	existing.Name = role.Name
	existing.Description = role.Description
	existing.Active = role.Active
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update role", zap.Int64("id", role.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	if err := s.repo.ReplacePermissions(existing.ID, permissionIDsOf(permissions)); err != nil {
		return nil, fmt.Errorf("failed to associate permissions: %w", err)
	}
	existing.Permissions = permissions
	return existing, nil
}

func (s *roleService) existingPermissions(permissionIDs []int64) ([]models.Permission, error) {
	permissions := []models.Permission{}
	for _, id := range permissionIDs {
		permission, err := s.permissionRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check permission: %w", err)
		}
		if permission != nil {
			permissions = append(permissions, *permission)
		}
	}
	return permissions, nil
}

func permissionIDsOf(permissions []models.Permission) []int64 {
	ids := make([]int64, 0, len(permissions))
	for _, permission := range permissions {
		ids = append(ids, permission.ID)
	}
	return ids
}

func (s *roleService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// FetchByID returns the role with its permissions loaded, nil when missing.
func (s *roleService) FetchByID(id int64) (*models.Role, error) {
	role, err := s.repo.GetByID(id)
	if err != nil || role == nil {
		return role, err
	}
	permissions, err := s.repo.GetPermissions(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load role permissions: %w", err)
	}
	role.Permissions = permissions
	return role, nil
}

func (s *roleService) FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	roles, err := s.repo.List(nameFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	total, err := s.repo.Count(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}
	result := models.NewPaginationResult(page, total, roles)
	return &result, nil
}
