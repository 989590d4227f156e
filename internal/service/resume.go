package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
)

type ResumeService interface {
	CheckResumeExistByUserAndJob(resume *models.Resume) (bool, error)
	Create(ctx context.Context, resume *models.Resume) (*models.ResumeCreateResponse, error)
	Update(ctx context.Context, resume *models.Resume) (*models.ResumeUpdateResponse, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.Resume, error)
	GetResume(resume *models.Resume) (*models.ResumeResponse, error)
	FetchAll(emailFilter string, page models.PageRequest) (*models.PaginationResult, error)
	FetchByCurrentUser(ctx context.Context, page models.PageRequest) (*models.PaginationResult, error)
}

type resumeService struct {
	repo        repository.ResumeRepository
	userRepo    repository.UserRepository
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	notifier    Notifier
	logger      *zap.Logger
}

func NewResumeService(repo repository.ResumeRepository, userRepo repository.UserRepository,
	jobRepo repository.JobRepository, companyRepo repository.CompanyRepository,
	notifier Notifier, logger *zap.Logger) ResumeService {
	return &resumeService{
		repo:        repo,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CheckResumeExistByUserAndJob verifies that both the applying user and the
// target job reference existing rows.
func (s *resumeService) CheckResumeExistByUserAndJob(resume *models.Resume) (bool, error) {
	if resume.UserID == 0 || resume.JobID == 0 {
		return false, nil
	}
	user, err := s.userRepo.GetByID(resume.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	if user == nil {
		return false, nil
	}
	job, err := s.jobRepo.GetByID(resume.JobID)
	if err != nil {
		return false, fmt.Errorf("failed to check job: %w", err)
	}
	return job != nil, nil
}

func (s *resumeService) Create(ctx context.Context, resume *models.Resume) (*models.ResumeCreateResponse, error) {
	if login, ok := token.CurrentUserLogin(ctx); ok {
		resume.CreatedBy = login
	}
	if err := s.repo.Create(resume); err != nil {
		s.logger.Error("Failed to create resume", zap.Error(err))
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	if s.notifier != nil {
		jobName := ""
		if job, err := s.jobRepo.GetByID(resume.JobID); err == nil && job != nil {
			jobName = job.Name
		}
		s.notifier.NotifyNewResume(resume.Email, jobName)
	}

	return &models.ResumeCreateResponse{
		ID:        resume.ID,
		CreatedAt: resume.CreatedAt,
		CreatedBy: resume.CreatedBy,
	}, nil
}

// Update changes only the review status. Returns nil when the resume does
// not exist.
func (s *resumeService) Update(ctx context.Context, resume *models.Resume) (*models.ResumeUpdateResponse, error) {
	existing, err := s.repo.GetByID(resume.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	existing.Status = resume.Status
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.UpdateStatus(existing); err != nil {
		s.logger.Error("Failed to update resume", zap.Int64("id", resume.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return &models.ResumeUpdateResponse{
		UpdatedAt: existing.UpdatedAt,
		UpdatedBy: existing.UpdatedBy,
	}, nil
}

func (s *resumeService) Delete(id int64) error {
	return s.repo.Delete(id)
}

func (s *resumeService) FetchByID(id int64) (*models.Resume, error) {
	return s.repo.GetByID(id)
}

// GetResume flattens the resume with its user, job and the job's company.
func (s *resumeService) GetResume(resume *models.Resume) (*models.ResumeResponse, error) {
	response := &models.ResumeResponse{
		ID:        resume.ID,
		Email:     resume.Email,
		URL:       resume.URL,
		Status:    resume.Status,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
		CreatedBy: resume.CreatedBy,
		UpdatedBy: resume.UpdatedBy,
	}

	user, err := s.userRepo.GetByID(resume.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume user: %w", err)
	}
	if user != nil {
		response.User = models.UserSummary{ID: user.ID, Name: user.Name}
	}

	job, err := s.jobRepo.GetByID(resume.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume job: %w", err)
	}
	if job != nil {
		response.Job = models.JobSummary{ID: job.ID, Name: job.Name}
		if job.CompanyID != nil {
			company, err := s.companyRepo.GetByID(*job.CompanyID)
			if err != nil {
				return nil, fmt.Errorf("failed to load resume company: %w", err)
			}
			if company != nil {
				response.CompanyName = company.Name
			}
		}
	}
	return response, nil
}

func (s *resumeService) FetchAll(emailFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	resumes, err := s.repo.List(emailFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	total, err := s.repo.Count(emailFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}
	return s.toPaginatedResponses(resumes, page, total)
}

// FetchByCurrentUser lists the resumes submitted by the ambient caller.
func (s *resumeService) FetchByCurrentUser(ctx context.Context, page models.PageRequest) (*models.PaginationResult, error) {
	email, ok := token.CurrentUserLogin(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	resumes, err := s.repo.ListByEmail(email, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	total, err := s.repo.CountByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}
	return s.toPaginatedResponses(resumes, page, total)
}

func (s *resumeService) toPaginatedResponses(resumes []models.Resume, page models.PageRequest, total int64) (*models.PaginationResult, error) {
	responses := make([]models.ResumeResponse, 0, len(resumes))
	for i := range resumes {
		response, err := s.GetResume(&resumes[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	result := models.NewPaginationResult(page, total, responses)
	return &result, nil
}
