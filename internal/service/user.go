package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(id int64) error
	FetchByID(id int64) (*models.User, error)
	FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error)
	GetByEmail(email string) (*models.User, error)
	IsEmailExist(email string) (bool, error)
	UpdateRefreshToken(refreshToken, email string) error
	GetByRefreshTokenAndEmail(refreshToken, email string) (*models.User, error)
	ToUserResponse(user *models.User) models.UserResponse
	ToCreateResponse(user *models.User) models.UserCreateResponse
	ToUpdateResponse(user *models.User) models.UserUpdateResponse
}

type userService struct {
	repo        repository.UserRepository
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
	logger      *zap.Logger
}

func NewUserService(repo repository.UserRepository, companyRepo repository.CompanyRepository,
	roleRepo repository.RoleRepository, logger *zap.Logger) UserService {
	return &userService{
		repo:        repo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		logger:      logger,
	}
}

// Create hashes the password and stores the user. Company and role
// associations that reference missing rows are dropped rather than rejected.
func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.resolveAssociations(user); err != nil {
		return nil, err
	}

	if login, ok := token.CurrentUserLogin(ctx); ok {
		user.CreatedBy = login
	}

	if err := s.repo.Create(user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Update changes profile fields and associations only. Email and password
// are never touched here. Returns nil when the user does not exist.
func (s *userService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := s.repo.GetByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.resolveAssociations(user); err != nil {
		return nil, err
	}

	existing.Name = user.Name
	existing.Age = user.Age
	existing.Gender = user.Gender
	existing.Address = user.Address
	existing.CompanyID = user.CompanyID
	existing.RoleID = user.RoleID
	if login, ok := token.CurrentUserLogin(ctx); ok {
		existing.UpdatedBy = login
	}

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("Failed to update user", zap.Int64("id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return existing, nil
}

func (s *userService) resolveAssociations(user *models.User) error {
	if user.CompanyID != nil {
		company, err := s.companyRepo.GetByID(*user.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to check company: %w", err)
		}
		if company == nil {
			user.CompanyID = nil
		}
	}
	if user.RoleID != nil {
		role, err := s.roleRepo.GetByID(*user.RoleID)
		if err != nil {
			return fmt.Errorf("failed to check role: %w", err)
		}
		if role == nil {
			user.RoleID = nil
		}
	}
	return nil
}

// Delete is idempotent; removing a missing user is not an error.
func (s *userService) Delete(id int64) error {
	return s.repo.Delete(id)
}

func (s *userService) FetchByID(id int64) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) FetchAll(nameFilter string, page models.PageRequest) (*models.PaginationResult, error) {
	users, err := s.repo.List(nameFilter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	total, err := s.repo.Count(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, s.ToUserResponse(&users[i]))
	}
	result := models.NewPaginationResult(page, total, responses)
	return &result, nil
}

func (s *userService) GetByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *userService) IsEmailExist(email string) (bool, error) {
	return s.repo.ExistsByEmail(email)
}

// UpdateRefreshToken overwrites the single refresh-token slot on the user
// record; the previously stored value stops matching from here on. Unknown
// emails are a no-op.
func (s *userService) UpdateRefreshToken(refreshToken, email string) error {
	return s.repo.UpdateRefreshToken(email, refreshToken)
}

func (s *userService) GetByRefreshTokenAndEmail(refreshToken, email string) (*models.User, error) {
	return s.repo.GetByRefreshTokenAndEmail(refreshToken, email)
}

func (s *userService) companySummary(user *models.User) *models.CompanySummary {
	if user.CompanyID == nil {
		return nil
	}
	company, err := s.companyRepo.GetByID(*user.CompanyID)
	if err != nil || company == nil {
		return nil
	}
	return &models.CompanySummary{ID: company.ID, Name: company.Name}
}

func (s *userService) roleSummary(user *models.User) *models.RoleSummary {
	if user.RoleID == nil {
		return nil
	}
	role, err := s.roleRepo.GetByID(*user.RoleID)
	if err != nil || role == nil {
		return nil
	}
	return &models.RoleSummary{ID: role.ID, Name: role.Name}
}

func (s *userService) ToUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		Gender:    user.Gender,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Company:   s.companySummary(user),
		Role:      s.roleSummary(user),
	}
}

func (s *userService) ToCreateResponse(user *models.User) models.UserCreateResponse {
	return models.UserCreateResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		Gender:    user.Gender,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
		Company:   s.companySummary(user),
	}
}

func (s *userService) ToUpdateResponse(user *models.User) models.UserUpdateResponse {
	return models.UserUpdateResponse{
		ID:        user.ID,
		Name:      user.Name,
		Age:       user.Age,
		Gender:    user.Gender,
		Address:   user.Address,
		UpdatedAt: user.UpdatedAt,
		Company:   s.companySummary(user),
	}
}
