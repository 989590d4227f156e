package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type JobService interface {
	Create(ctx context.Context, job *models.Job, skillIDs []int64) (*models.JobCreateResponse, error)
	Update(ctx context.Context, job *models.Job, skillIDs []int64) (*models.JobUpdateResponse, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.Job, error)
	FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error)
	ToJobResponse(job *models.Job) models.JobResponse
}

type jobService struct {
	repo        repository.JobRepository
	skillRepo   repository.SkillRepository
	companyRepo repository.CompanyRepository
	notifier    Notifier
	logger      *zap.Logger
}

func NewJobService(repo repository.JobRepository, skillRepo repository.SkillRepository,
	companyRepo repository.CompanyRepository, notifier Notifier, logger *zap.Logger) JobService {
	return &jobService{
		repo:        repo,
		skillRepo:   skillRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create stores the job with only the skills that actually exist; unknown
// skill ids are silently dropped. A company reference to a missing row is
// cleared the same way.
func (s *jobService) Create(ctx context.Context, job *models.Job, skillIDs []int64) (*models.JobCreateResponse, error) {
	if err := s.resolveCompany(job); err != nil {
		return nil, err
	}
	skills, err := s.existingSkills(skillIDs)
	if err != nil {
		return nil, err
	}

	if login, ok := token.CurrentUserLogin(ctx); ok {
		job.CreatedBy = login
	}

	if err := s.repo.Create(job); err != nil {
		s.logger.Error("Failed to create job", zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	if err := s.repo.ReplaceSkills(job.ID, skillIDsOf(skills)); err != nil {
		return nil, fmt.Errorf("failed to associate skills: %w", err)
	}
	job.Skills = skills

	if s.notifier != nil {
		s.notifier.NotifyNewJob(job.Name, s.companyName(job))
	}

	return &models.JobCreateResponse{
		ID:        job.ID,
		Name:      job.Name,
		Location:  job.Location,
		Salary:    job.Salary,
		Quantity:  job.Quantity,
		Level:     job.Level,
		StartDate: job.StartDate,
		EndDate:   job.EndDate,
		Active:    job.Active,
		Skills:    skillNames(skills),
		CreatedAt: job.CreatedAt,
		CreatedBy: job.CreatedBy,
	}, nil
}

// Update returns nil when the job does not exist.
func (s *jobService) Update(ctx context.Context, job *models.Job, skillIDs []int64) (*models.JobUpdateResponse, error) {
	existing, err := s.repo.GetByID(job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.resolveCompany(job); err != nil {
		return nil, err
	}
	skills, err := s.existingSkills(skillIDs)
	if err != nil {
		return nil, err
	}

	existing.Name = job.Name
	existing.Location = job.Location
	existing.Salary = job.Salary
	existing.Quantity = job.Quantity
	existing.Level = job.Level
	existing.Description = job.Description
	existing.StartDate = job.StartDate
	existing.EndDate = job.EndDate
	existing.Active = job.Active
	existing.CompanyID = job.CompanyID
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update job", zap.Int64("id", job.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if err := s.repo.ReplaceSkills(existing.ID, skillIDsOf(skills)); err != nil {
		return nil, fmt.Errorf("failed to associate skills: %w", err)
	}

	return &models.JobUpdateResponse{
		ID:        existing.ID,
		Name:      existing.Name,
		Location:  existing.Location,
		Salary:    existing.Salary,
		Quantity:  existing.Quantity,
		Level:     existing.Level,
		StartDate: existing.StartDate,
		EndDate:   existing.EndDate,
		Active:    existing.Active,
		Skills:    skillNames(skills),
		UpdatedAt: existing.UpdatedAt,
		UpdatedBy: existing.UpdatedBy,
	}, nil
}

func (s *jobService) resolveCompany(job *models.Job) error {
	if job.CompanyID == nil {
		return nil
	}
	company, err := s.companyRepo.GetByID(*job.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to check company: %w", err)
	}
	if company == nil {
		job.CompanyID = nil
	}
	return nil
}

func (s *jobService) companyName(job *models.Job) string {
	if job.CompanyID == nil {
		return ""
	}
	company, err := s.companyRepo.GetByID(*job.CompanyID)
	if err != nil || company == nil {
		return ""
	}
	return company.Name
}

func (s *jobService) existingSkills(skillIDs []int64) ([]models.Skill, error) {
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

func skillIDsOf(skills []models.Skill) []int64 {
	ids := make([]int64, 0, len(skills))
	for _, skill := range skills {
		ids = append(ids, skill.ID)
	}
	return ids
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}

func (s *jobService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// FetchByID returns the job with its skills loaded, nil when missing.
func (s *jobService) FetchByID(id int64) (*models.Job, error) {
	job, err := s.repo.GetByID(id)
	if err != nil || job == nil {
		return job, err
	}
	skills, err := s.repo.GetSkills(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load job skills: %w", err)
	}
	job.Skills = skills
	return job, nil
}

func (s *jobService) FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	jobs, err := s.repo.List(nameFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	total, err := s.repo.Count(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	responses := make([]models.JobResponse, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		skills, err := s.repo.GetSkills(job.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load job skills: %w", err)
		}
		job.Skills = skills
		responses = append(responses, s.ToJobResponse(job))
	}
	result := models.NewPaginationResult(page, total, responses)
	return &result, nil
}

func (s *jobService) ToJobResponse(job *models.Job) models.JobResponse {
	response := models.JobResponse{
		ID:          job.ID,
		Name:        job.Name,
		Location:    job.Location,
		Salary:      job.Salary,
		Quantity:    job.Quantity,
		Level:       job.Level,
		Description: job.Description,
		StartDate:   job.StartDate,
		EndDate:     job.EndDate,
		Active:      job.Active,
		Skills:      skillNames(job.Skills),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if job.CompanyID != nil {
		if company, err := s.companyRepo.GetByID(*job.CompanyID); err == nil && company != nil {
			response.Company = &models.CompanySummary{ID: company.ID, Name: company.Name}
		}
	}
	return response
}
