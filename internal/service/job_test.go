package service

import (
	"context"
	"testing"

	"jobboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type jobFixture struct {
	jobs        JobService
	jobRepo     *fakeJobRepo
	skillRepo   *fakeSkillRepo
	companyRepo *fakeCompanyRepo
	notifier    *recordingNotifier
}

func newJobFixture() *jobFixture {
	skillRepo := newFakeSkillRepo()
	jobRepo := newFakeJobRepo(skillRepo)
	companyRepo := newFakeCompanyRepo()
	notifier := &recordingNotifier{}
	return &jobFixture{
		jobs:        NewJobService(jobRepo, skillRepo, companyRepo, notifier, zap.NewNop()),
		jobRepo:     jobRepo,
		skillRepo:   skillRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
	}
}

func TestJobCreateKeepsOnlyExistingSkills(t *testing.T) {
	f := newJobFixture()
	golang := &models.Skill{Name: "Go"}
	require.NoError(t, f.skillRepo.Create(golang))

	created, err := f.jobs.Create(context.Background(), &models.Job{
		Name:  "Backend Engineer",
		Level: models.LevelSenior,
	}, []int64{golang.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, created.Skills)

	stored, err := f.jobRepo.GetSkills(created.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, golang.ID, stored[0].ID)
}

func TestJobCreateClearsMissingCompany(t *testing.T) {
	f := newJobFixture()
	missing := int64(42)

	created, err := f.jobs.Create(context.Background(), &models.Job{
		Name:      "Backend Engineer",
		Level:     models.LevelJunior,
		CompanyID: &missing,
	}, nil)
	require.NoError(t, err)

	stored, err := f.jobRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CompanyID)
}

func TestJobCreateNotifies(t *testing.T) {
	f := newJobFixture()

	_, err := f.jobs.Create(context.Background(), &models.Job{
		Name:  "Backend Engineer",
		Level: models.LevelMiddle,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Engineer"}, f.notifier.jobs)
}

func TestJobUpdateReturnsNilWhenMissing(t *testing.T) {
	f := newJobFixture()

	updated, err := f.jobs.Update(context.Background(), &models.Job{ID: 999, Name: "Ghost"}, nil)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestJobUpdateReplacesSkills(t *testing.T) {
	f := newJobFixture()
	golang := &models.Skill{Name: "Go"}
	require.NoError(t, f.skillRepo.Create(golang))
	rust := &models.Skill{Name: "Rust"}
	require.NoError(t, f.skillRepo.Create(rust))

	created, err := f.jobs.Create(context.Background(), &models.Job{
		Name:  "Backend Engineer",
		Level: models.LevelSenior,
	}, []int64{golang.ID})
	require.NoError(t, err)

	updated, err := f.jobs.Update(context.Background(), &models.Job{
		ID:    created.ID,
		Name:  "Backend Engineer",
		Level: models.LevelSenior,
	}, []int64{rust.ID})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"Rust"}, updated.Skills)
}

func TestJobFetchByIDLoadsSkills(t *testing.T) {
	f := newJobFixture()
	golang := &models.Skill{Name: "Go"}
	require.NoError(t, f.skillRepo.Create(golang))

	created, err := f.jobs.Create(context.Background(), &models.Job{
		Name:  "Backend Engineer",
		Level: models.LevelSenior,
	}, []int64{golang.ID})
	require.NoError(t, err)

	job, err := f.jobs.FetchByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, job)
	require.Len(t, job.Skills, 1)
	assert.Equal(t, "Go", job.Skills[0].Name)
}
