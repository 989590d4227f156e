package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type PermissionService interface {
	IsPermissionExist(permission *models.Permission) (bool, error)
	IsSameName(permission *models.Permission) (bool, error)
	Create(ctx context.Context, permission *models.Permission) (*models.Permission, error)
	Update(ctx context.Context, permission *models.Permission) (*models.Permission, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.Permission, error)
	FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error)
}

type permissionService struct {
	repo   repository.PermissionRepository
	logger *zap.Logger
}

func NewPermissionService(repo repository.PermissionRepository, logger *zap.Logger) PermissionService {
	return &permissionService{repo: repo, logger: logger}
}

// IsPermissionExist reports whether a permission with the same api path,
// method and module is already stored. The name does not participate in
// the identity check.
func (s *permissionService) IsPermissionExist(permission *models.Permission) (bool, error) {
	return s.repo.ExistsByPathMethodModule(permission.APIPath, permission.Method, permission.Module)
}

// IsSameName reports whether the stored permission with the same id still
// carries the submitted name.
func (s *permissionService) IsSameName(permission *models.Permission) (bool, error) {
	existing, err := s.repo.GetByID(permission.ID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch permission: %w", err)
	}
	if existing == nil {
		return false, nil
	}
	return existing.Name == permission.Name, nil
}

func (s *permissionService) Create(ctx context.Context, permission *models.Permission) (*models.Permission, error) {
	if login, ok := token.CurrentUserLogin(ctx); ok {
		permission.CreatedBy = login
	}
	if err := s.repo.Create(permission); err != nil {
		s.logger.Error("Failed to create permission", zap.Error(err))
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}
	return permission, nil
}

// Update returns nil when the permission does not exist.
func (s *permissionService) Update(ctx context.Context, permission *models.Permission) (*models.Permission, error) {
	existing, err := s.repo.GetByID(permission.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permission: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = permission.Name
	existing.APIPath = permission.APIPath
	existing.Method = permission.Method
	existing.Module = permission.Module
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update permission", zap.Int64("id", permission.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update permission: %w", err)
	}
	return existing, nil
}

// Delete detaches the permission from every role before removing it.
func (s *permissionService) Delete(id int64) error {
	if err := s.repo.DetachFromRoles(id); err != nil {
		return fmt.Errorf("failed to detach permission from roles: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	return nil
}

func (s *permissionService) FetchByID(id int64) (*models.Permission, error) {
	return s.repo.GetByID(id)
}

func (s *permissionService) FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	permissions, err := s.repo.List(nameFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	total, err := s.repo.Count(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count permissions: %w", err)
	}
	result := models.NewPaginationResult(page, total, permissions)
	return &result, nil
}
