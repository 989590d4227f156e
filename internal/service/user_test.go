package service

import (
	"context"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type userFixture struct {
	users       UserService
	userRepo    *fakeUserRepo
	companyRepo *fakeCompanyRepo
	roleRepo    *fakeRoleRepo
}

func newUserFixture() *userFixture {
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	roleRepo := newFakeRoleRepo(newFakePermissionRepo())
	return &userFixture{
		users:       NewUserService(userRepo, companyRepo, roleRepo, zap.NewNop()),
		userRepo:    userRepo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
	}
}

func TestUserCreateDropsMissingAssociations(t *testing.T) {
	f := newUserFixture()
	missingCompany := int64(42)
	missingRole := int64(7)

	created, err := f.users.Create(context.Background(), &models.User{
		Name:      "Alex",
		Email:     "alex@example.com",
		Password:  "secret123",
		Gender:    models.GenderOther,
		CompanyID: &missingCompany,
		RoleID:    &missingRole,
	})
	require.NoError(t, err)
	assert.Nil(t, created.CompanyID)
	assert.Nil(t, created.RoleID)
}

func TestUserCreateKeepsExistingAssociations(t *testing.T) {
	f := newUserFixture()
	company := &models.Company{Name: "Acme"}
	require.NoError(t, f.companyRepo.Create(company))
	role := &models.Role{Name: "HR", Active: true}
	require.NoError(t, f.roleRepo.Create(role))

	created, err := f.users.Create(context.Background(), &models.User{
		Name:      "Alex",
		Email:     "alex@example.com",
		Password:  "secret123",
		Gender:    models.GenderOther,
		CompanyID: &company.ID,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.CompanyID)
	assert.Equal(t, company.ID, *created.CompanyID)
	require.NotNil(t, created.RoleID)
	assert.Equal(t, role.ID, *created.RoleID)

	response := f.users.ToUserResponse(created)
	require.NotNil(t, response.Company)
	assert.Equal(t, "Acme", response.Company.Name)
	require.NotNil(t, response.Role)
	assert.Equal(t, "HR", response.Role.Name)
}

func TestUserCreateStampsAmbientCaller(t *testing.T) {
	f := newUserFixture()
	ctx := token.WithAuthentication(context.Background(), token.Authentication{Name: "admin@example.com"})

	created, err := f.users.Create(ctx, &models.User{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret123",
		Gender:   models.GenderOther,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", created.CreatedBy)
}

func TestUserUpdateReturnsNilWhenMissing(t *testing.T) {
	f := newUserFixture()

	updated, err := f.users.Update(context.Background(), &models.User{ID: 999, Name: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUserUpdateNeverTouchesEmailOrPassword(t *testing.T) {
	f := newUserFixture()
	created, err := f.users.Create(context.Background(), &models.User{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret123",
		Gender:   models.GenderOther,
	})
	require.NoError(t, err)
	originalPassword := created.Password

	updated, err := f.users.Update(context.Background(), &models.User{
		ID:      created.ID,
		Name:    "Alexandra",
		Email:   "changed@example.com",
		Age:     30,
		Gender:  models.GenderFemale,
		Address: "New address",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Alexandra", updated.Name)
	assert.Equal(t, "alex@example.com", updated.Email)

	stored, err := f.userRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", stored.Email)
	assert.Equal(t, originalPassword, stored.Password)
}

func TestUserDeleteIsIdempotent(t *testing.T) {
	f := newUserFixture()
	created, err := f.users.Create(context.Background(), &models.User{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret123",
		Gender:   models.GenderOther,
	})
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(created.ID))
	require.NoError(t, f.users.Delete(created.ID))

	fetched, err := f.users.FetchByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestUserFetchAllPaginates(t *testing.T) {
	f := newUserFixture()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := f.users.Create(context.Background(), &models.User{
			Name:     "User " + email,
			Email:    email,
			Password: "secret123",
			Gender:   models.GenderOther,
		})
		require.NoError(t, err)
	}

	result, err := f.users.FetchAll("", models.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 2, result.Meta.PageSize)
	assert.Equal(t, 2, result.Meta.Pages)
	assert.Equal(t, int64(3), result.Meta.Total)
}
