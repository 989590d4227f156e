package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type SkillService interface {
	IsNameExist(name string) (bool, error)
	Create(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.Skill, error)
	FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error)
}

type skillService struct {
	repo           repository.SkillRepository
	subscriberRepo repository.SubscriberRepository
	logger         *zap.Logger
}

func NewSkillService(repo repository.SkillRepository, subscriberRepo repository.SubscriberRepository, logger *zap.Logger) SkillService {
	return &skillService{repo: repo, subscriberRepo: subscriberRepo, logger: logger}
}

func (s *skillService) IsNameExist(name string) (bool, error) {
	return s.repo.ExistsByName(name)
}

func (s *skillService) Create(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	if login, ok := token.CurrentUserLogin(ctx); ok {
		skill.CreatedBy = login
	}
	if err := s.repo.Create(skill); err != nil {
		s.logger.Error("Failed to create skill", zap.Error(err))
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// Update returns nil when the skill does not exist.
func (s *skillService) Update(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	existing, err := s.repo.GetByID(skill.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skill: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = skill.Name
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update skill", zap.Int64("id", skill.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return existing, nil
}

// Delete detaches the skill from every job and subscription before
// removing it.
func (s *skillService) Delete(id int64) error {
	if err := s.repo.DetachFromJobs(id); err != nil {
		return fmt.Errorf("failed to detach skill from jobs: %w", err)
	}
	if err := s.subscriberRepo.DetachSkill(id); err != nil {
		return fmt.Errorf("failed to detach skill from subscribers: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func (s *skillService) FetchByID(id int64) (*models.Skill, error) {
	return s.repo.GetByID(id)
}

func (s *skillService) FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	skills, err := s.repo.List(nameFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	total, err := s.repo.Count(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count skills: %w", err)
	}
	result := models.NewPaginationResult(page, total, skills)
	return &result, nil
}
