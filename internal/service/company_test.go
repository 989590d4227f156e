package service

import (
	"context"
	"testing"

	"jobboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCompanyFixture() (CompanyService, *fakeCompanyRepo, *fakeUserRepo) {
	companyRepo := newFakeCompanyRepo()
	userRepo := newFakeUserRepo()
	return NewCompanyService(companyRepo, userRepo, zap.NewNop()), companyRepo, userRepo
}

func TestCompanyUpdateReturnsNilWhenMissing(t *testing.T) {
	companies, _, _ := newCompanyFixture()

	updated, err := companies.Update(context.Background(), &models.Company{ID: 999, Name: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCompanyDeleteRemovesItsUsers(t *testing.T) {
	companies, companyRepo, userRepo := newCompanyFixture()
	company := &models.Company{Name: "Acme"}
	require.NoError(t, companyRepo.Create(company))

	employee := &models.User{Name: "Alex", Email: "alex@acme.com", Gender: models.GenderOther, CompanyID: &company.ID}
	require.NoError(t, userRepo.Create(employee))
	outsider := &models.User{Name: "Sam", Email: "sam@other.com", Gender: models.GenderOther}
	require.NoError(t, userRepo.Create(outsider))

	require.NoError(t, companies.Delete(company.ID))

	gone, err := userRepo.GetByID(employee.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := userRepo.GetByID(outsider.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	deleted, err := companyRepo.GetByID(company.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestCompanyFetchAllFiltersByName(t *testing.T) {
	companies, companyRepo, _ := newCompanyFixture()
	require.NoError(t, companyRepo.Create(&models.Company{Name: "Acme"}))
	require.NoError(t, companyRepo.Create(&models.Company{Name: "Globex"}))

	result, err := companies.FetchAll("acme", models.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.Total)
}
