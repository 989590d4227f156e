package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const jobColumns = `id, name, location, salary, quantity, level, description, start_date, end_date, active, company_id, created_at, updated_at, created_by, updated_by`

type JobRepository interface {
	Create(job *models.Job) error
	GetByID(id int64) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id int64) error
	List(nameFilter string, limit, offset int) ([]models.Job, error)
	Count(nameFilter string) (int64, error)
	GetSkills(jobID int64) ([]models.Skill, error)
	ReplaceSkills(jobID int64, skillIDs []int64) error
}

type jobRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewJobRepository(db *sqlx.DB, log *logrus.Logger) JobRepository {
	return &jobRepository{db: db, log: log}
}

func (r *jobRepository) Create(job *models.Job) error {
	query := `INSERT INTO jobs (name, location, salary, quantity, level, description, start_date, end_date, active, company_id, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, job.Name, job.Location, job.Salary, job.Quantity, job.Level,
		job.Description, job.StartDate, job.EndDate, job.Active, job.CompanyID, job.CreatedBy).StructScan(job)
}

func (r *jobRepository) GetByID(id int64) (*models.Job, error) {
	var job models.Job
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	err := r.db.Get(&job, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	query := `UPDATE jobs
	          SET name = $1, location = $2, salary = $3, quantity = $4, level = $5, description = $6,
	              start_date = $7, end_date = $8, active = $9, company_id = $10, updated_at = now(), updated_by = $11
	          WHERE id = $12
	          RETURNING updated_at`
	return r.db.QueryRowx(query, job.Name, job.Location, job.Salary, job.Quantity, job.Level,
		job.Description, job.StartDate, job.EndDate, job.Active, job.CompanyID, job.UpdatedBy, job.ID).StructScan(job)
}

func (r *jobRepository) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM job_skill WHERE job_id = $1`, id); err != nil {
		return err
	}
	_, err := r.db.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	return err
}

func (r *jobRepository) List(nameFilter string, limit, offset int) ([]models.Job, error) {
	jobs := []models.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&jobs, query, nameFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Count(nameFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM jobs WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, nameFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *jobRepository) GetSkills(jobID int64) ([]models.Skill, error) {
	skills := []models.Skill{}
	query := `SELECT s.id, s.name, s.created_at, s.updated_at, s.created_by, s.updated_by
	          FROM skills s
	          JOIN job_skill js ON js.skill_id = s.id
	          WHERE js.job_id = $1
	          ORDER BY s.id`
	err := r.db.Select(&skills, query, jobID)
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *jobRepository) ReplaceSkills(jobID int64, skillIDs []int64) error {
	if _, err := r.db.Exec(`DELETE FROM job_skill WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		if _, err := r.db.Exec(`INSERT INTO job_skill (job_id, skill_id) VALUES ($1, $2)`, jobID, skillID); err != nil {
			return err
		}
	}
	return nil
}
