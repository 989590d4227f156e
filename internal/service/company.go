package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type CompanyService interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) (*models.Company, error)
	Delete(id int64) error
	FindByID(id int64) (*models.Company, error)
	FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error)
}

type companyService struct {
	repo     repository.CompanyRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewCompanyService(repo repository.CompanyRepository, userRepo repository.UserRepository, logger *zap.Logger) CompanyService {
	return &companyService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *companyService) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if login, ok := token.CurrentUserLogin(ctx); ok {
		company.CreatedBy = login
	}
	if err := s.repo.Create(company); err != nil {
		s.logger.Error("Failed to create company", zap.Error(err))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// Update returns nil when the company does not exist.
func (s *companyService) Update(ctx context.Context, company *models.Company) (*models.Company, error) {
	existing, err := s.repo.GetByID(company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = company.Name
	existing.Description = company.Description
	existing.Address = company.Address
	existing.Logo = company.Logo
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update company", zap.Int64("id", company.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return existing, nil
}

// Delete removes the company together with the users that belong to it.
func (s *companyService) Delete(id int64) error {
	if err := s.userRepo.DeleteByCompanyID(id); err != nil {
		return fmt.Errorf("failed to delete company users: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *companyService) FindByID(id int64) (*models.Company, error) {
	return s.repo.GetByID(id)
}

func (s *companyService) FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	companies, err := s.repo.List(nameFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	total, err := s.repo.Count(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}
	result := models.NewPaginationResult(page, total, companies)
	return &result, nil
}
