package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type SubscriberService interface {
	IsEmailExist(email string) (bool, error)
	Create(ctx context.Context, subscriber *models.Subscriber, skillIDs []int64) (*models.Subscriber, error)
	Update(ctx context.Context, subscriber *models.Subscriber, skillIDs []int64) (*models.Subscriber, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.Subscriber, error)
	FetchByCurrentUser(ctx context.Context) (*models.Subscriber, error)
}

type subscriberService struct {
	repo      repository.SubscriberRepository
	skillRepo repository.SkillRepository
	logger    *zap.Logger
}

func NewSubscriberService(repo repository.SubscriberRepository, skillRepo repository.SkillRepository,
	logger *zap.Logger) SubscriberService {
	return &subscriberService{repo: repo, skillRepo: skillRepo, logger: logger}
}

func (s *subscriberService) IsEmailExist(email string) (bool, error) {
	return s.repo.ExistsByEmail(email)
}

// Create stores the subscription keeping only the skills that exist; unknown
// skill ids are dropped.
func (s *subscriberService) Create(ctx context.Context, subscriber *models.Subscriber, skillIDs []int64) (*models.Subscriber, error) {
	skills, err := s.followedSkills(skillIDs)
	if err != nil {
		return nil, err
	}

	if login, ok := token.CurrentUserLogin(ctx); ok {
		subscriber.CreatedBy = login
	}

	if err := s.repo.Create(subscriber); err != nil {
		s.logger.Error("Failed to create subscriber", zap.Error(err))
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}
	if err := s.repo.ReplaceSkills(subscriber.ID, skillIDsOf(skills)); err != nil {
		return nil, fmt.Errorf("failed to associate skills: %w", err)
	}
	subscriber.Skills = skills
	return subscriber, nil
}

// Update re-associates the followed skills only; email is never changed.
// Returns nil when the subscriber does not exist.
func (s *subscriberService) Update(ctx context.Context, subscriber *models.Subscriber, skillIDs []int64) (*models.Subscriber, error) {
	existing, err := s.repo.GetByID(subscriber.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriber: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	skills, err := s.followedSkills(skillIDs)
	if err != nil {
		return nil, err
	}

	existing.Name = subscriber.Name
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update subscriber", zap.Int64("id", subscriber.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}
	if err := s.repo.ReplaceSkills(existing.ID, skillIDsOf(skills)); err != nil {
		return nil, fmt.Errorf("failed to associate skills: %w", err)
	}
	existing.Skills = skills
	return existing, nil
}

func (s *subscriberService) followedSkills(skillIDs []int64) ([]models.Skill, error) {
	skills := []models.Skill{}
	for _, id := range skillIDs {
		skill, err := s.skillRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check skill: %w", err)
		}
		if skill != nil {
			skills = append(skills, *skill)
		}
	}
	return skills, nil
}

func (s *subscriberService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// FetchByID returns the subscriber with their skills loaded, nil when
// missing.
func (s *subscriberService) FetchByID(id int64) (*models.Subscriber, error) {
	subscriber, err := s.repo.GetByID(id)
	if err != nil || subscriber == nil {
		return subscriber, err
	}
	skills, err := s.repo.GetSkills(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriber skills: %w", err)
	}
	subscriber.Skills = skills
	return subscriber, nil
}

// FetchByCurrentUser returns the subscription registered under the ambient
// caller's email, nil when they never subscribed.
func (s *subscriberService) FetchByCurrentUser(ctx context.Context) (*models.Subscriber, error) {
	email, ok := token.CurrentUserLogin(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	subscriber, err := s.repo.GetByEmail(email)
	if err != nil || subscriber == nil {
		return subscriber, err
	}
	return s.FetchByID(subscriber.ID)
}
