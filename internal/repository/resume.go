package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const resumeColumns = `id, email, url, status, user_id, job_id, created_at, updated_at, created_by, updated_by`

type ResumeRepository interface {
	Create(resume *models.Resume) error
	GetByID(id int64) (*models.Resume, error)
	UpdateStatus(resume *models.Resume) error
	Delete(id int64) error
	List(emailFilter string, limit, offset int) ([]models.Resume, error)
	Count(emailFilter string) (int64, error)
	ListByEmail(email string, limit, offset int) ([]models.Resume, error)
	CountByEmail(email string) (int64, error)
}

type resumeRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewResumeRepository(db *sqlx.DB, log *logrus.Logger) ResumeRepository {
	return &resumeRepository{db: db, log: log}
}

func (r *resumeRepository) Create(resume *models.Resume) error {
	query := `INSERT INTO resumes (email, url, status, user_id, job_id, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, resume.Email, resume.URL, resume.Status,
		resume.UserID, resume.JobID, resume.CreatedBy).StructScan(resume)
}

func (r *resumeRepository) GetByID(id int64) (*models.Resume, error) {
	var resume models.Resume
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	err := r.db.Get(&resume, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) UpdateStatus(resume *models.Resume) error {
	query := `UPDATE resumes SET status = $1, updated_at = now(), updated_by = $2 WHERE id = $3
	          RETURNING updated_at`
	return r.db.QueryRowx(query, resume.Status, resume.UpdatedBy, resume.ID).StructScan(resume)
}

func (r *resumeRepository) Delete(id int64) error {
	query := `DELETE FROM resumes WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *resumeRepository) List(emailFilter string, limit, offset int) ([]models.Resume, error) {
	resumes := []models.Resume{}
	query := `SELECT ` + resumeColumns + ` FROM resumes
	          WHERE ($1 = '' OR email ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&resumes, query, emailFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) Count(emailFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM resumes WHERE ($1 = '' OR email ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, emailFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *resumeRepository) ListByEmail(email string, limit, offset int) ([]models.Resume, error) {
	resumes := []models.Resume{}
	query := `SELECT ` + resumeColumns + ` FROM resumes
	          WHERE created_by = $1
	          ORDER BY created_at DESC
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&resumes, query, email, limit, offset)
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) CountByEmail(email string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM resumes WHERE created_by = $1`
	err := r.db.Get(&count, query, email)
	if err != nil {
		return 0, err
	}
	return count, nil
}
