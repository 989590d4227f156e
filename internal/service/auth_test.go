package service

import (
	"context"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, UserService, *fakeUserRepo, *token.Authority) {
	t.Helper()

	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	permissionRepo := newFakePermissionRepo()
	roleRepo := newFakeRoleRepo(permissionRepo)

	logger := zap.NewNop()
	users := NewUserService(userRepo, companyRepo, roleRepo, logger)

	authority, err := token.NewAuthority("auth-service-test-secret", 3600, 86400)
	require.NoError(t, err)

	return NewAuthService(users, authority, logger), users, userRepo, authority
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Name:     "Alex",
		Email:    email,
		Password: string(hash),
		Gender:   models.GenderOther,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestLoginIssuesTokenPairAndPersistsRefreshToken(t *testing.T) {
	auth, _, userRepo, authority := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	result, err := auth.Login(context.Background(), "alex@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "alex@example.com", result.User.Email)

	claims, err := authority.Validate(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", claims.Subject)

	stored, err := userRepo.GetByEmail("alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, result.RefreshToken, stored.RefreshToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	_, err := auth.Login(context.Background(), "alex@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesTokenPair(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	login, err := auth.Login(context.Background(), "alex@example.com", "secret123")
	require.NoError(t, err)

	refreshed, err := auth.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	stored, err := userRepo.GetByEmail("alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, refreshed.RefreshToken, stored.RefreshToken)
}

func TestRefreshRejectsSupersededToken(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	login, err := auth.Login(context.Background(), "alex@example.com", "secret123")
	require.NoError(t, err)

	// A newer login overwrites the single stored slot; the old token keeps a
	// valid signature but no longer matches.
	require.NoError(t, userRepo.UpdateRefreshToken("alex@example.com", "replacement-token"))

	_, err = auth.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Refresh(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestLogoutClearsStoredRefreshToken(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	login, err := auth.Login(context.Background(), "alex@example.com", "secret123")
	require.NoError(t, err)

	ctx := token.WithAuthentication(context.Background(), token.Authentication{
		Name:       "alex@example.com",
		Credential: login.AccessToken,
	})
	require.NoError(t, auth.Logout(ctx))

	stored, err := userRepo.GetByEmail("alex@example.com")
	require.NoError(t, err)
	assert.Empty(t, stored.RefreshToken)

	// The outstanding refresh token can no longer be redeemed.
	_, err = auth.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestLogoutRequiresAuthentication(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	err := auth.Logout(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	_, err := auth.Register(context.Background(), &models.User{
		Name:     "Another Alex",
		Email:    "alex@example.com",
		Password: "different",
		Gender:   models.GenderOther,
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)

	created, err := auth.Register(context.Background(), &models.User{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "secret123",
		Gender:   models.GenderOther,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	stored, err := userRepo.GetByEmail("sam@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestAccountReturnsCallerPayload(t *testing.T) {
	auth, _, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alex@example.com", "secret123")

	ctx := token.WithAuthentication(context.Background(), token.Authentication{Name: "alex@example.com"})
	account, err := auth.Account(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", account.Email)
	assert.Equal(t, "Alex", account.Name)
}

func TestAccountRequiresAuthentication(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Account(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
