package service

import (
	"context"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult bundles the freshly minted token pair with the payload that
// was embedded into both tokens.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         token.UserToken
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, user *models.User) (*models.User, error)
	Account(ctx context.Context) (*token.UserToken, error)
}

type authService struct {
	users     UserService
	authority *token.Authority
	logger    *zap.Logger
}

func NewAuthService(users UserService, authority *token.Authority, logger *zap.Logger) AuthService {
	return &authService{users: users, authority: authority, logger: logger}
}

// Login verifies the credentials, mints an access/refresh token pair and
// persists the refresh token. The stored refresh token is a single slot, so
// a successful login invalidates whatever refresh token was issued before.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		s.logger.Error("Failed to fetch user for login", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	result, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in successfully.", zap.String("email", user.Email))
	return result, nil
}

// Refresh validates the presented refresh token, cross-checks it against the
// persisted slot for the subject user, and rotates the pair. A token that no
// longer matches the stored value (superseded by a newer login or refresh)
// is rejected even when its signature and expiry are fine.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.authority.CheckValidRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByRefreshTokenAndEmail(refreshToken, claims.Subject)
	if err != nil {
		s.logger.Error("Failed to cross-check refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: refresh token superseded", token.ErrInvalidToken)
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *models.User) (*LoginResult, error) {
	payload := s.tokenPayload(user)

	accessToken, err := s.authority.CreateAccessToken(user.Email, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, err := s.authority.CreateRefreshToken(user.Email, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := s.users.UpdateRefreshToken(refreshToken, user.Email); err != nil {
		s.logger.Error("Failed to persist refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         payload,
	}, nil
}

func (s *authService) tokenPayload(user *models.User) token.UserToken {
	payload := token.UserToken{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	response := s.users.ToUserResponse(user)
	if response.Company != nil {
		payload.Company = &token.Summary{ID: response.Company.ID, Name: response.Company.Name}
	}
	if response.Role != nil {
		payload.Role = &token.Summary{ID: response.Role.ID, Name: response.Role.Name}
	}
	return payload
}

// Logout clears the stored refresh token of the current caller, so the
// outstanding refresh token can no longer be redeemed.
func (s *authService) Logout(ctx context.Context) error {
	email, ok := token.CurrentUserLogin(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	if err := s.users.UpdateRefreshToken("", email); err != nil {
		s.logger.Error("Failed to clear refresh token", zap.Error(err))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.logger.Info("User logged out successfully.", zap.String("email", email))
	return nil
}

// Register creates a self-service account. Duplicate emails are rejected.
func (s *authService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	exists, err := s.users.IsEmailExist(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}
	return s.users.Create(ctx, user)
}

// Account returns the profile payload of the ambient caller.
func (s *authService) Account(ctx context.Context) (*token.UserToken, error) {
	email, ok := token.CurrentUserLogin(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	payload := s.tokenPayload(user)
	return &payload, nil
}
