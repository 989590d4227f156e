package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const skillColumns = `id, name, created_at, updated_at, created_by, updated_by`

type SkillRepository interface {
	Create(skill *models.Skill) error
	GetByID(id int64) (*models.Skill, error)
	ExistsByName(name string) (bool, error)
	Update(skill *models.Skill) error
	Delete(id int64) error
	DetachFromJobs(skillID int64) error
	List(nameFilter string, limit, offset int) ([]models.Skill, error)
	Count(nameFilter string) (int64, error)
}

type skillRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewSkillRepository(db *sqlx.DB, log *logrus.Logger) SkillRepository {
	return &skillRepository{db: db, log: log}
}

func (r *skillRepository) Create(skill *models.Skill) error {
	query := `INSERT INTO skills (name, created_by) VALUES ($1, $2)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, skill.Name, skill.CreatedBy).StructScan(skill)
}

func (r *skillRepository) GetByID(id int64) (*models.Skill, error) {
	var skill models.Skill
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	err := r.db.Get(&skill, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) ExistsByName(name string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM skills WHERE name = $1`
	err := r.db.Get(&count, query, name)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *skillRepository) Update(skill *models.Skill) error {
	query := `UPDATE skills SET name = $1, updated_at = now(), updated_by = $2 WHERE id = $3
	          RETURNING updated_at`
	return r.db.QueryRowx(query, skill.Name, skill.UpdatedBy, skill.ID).StructScan(skill)
}

func (r *skillRepository) Delete(id int64) error {
	query := `DELETE FROM skills WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *skillRepository) DetachFromJobs(skillID int64) error {
	query := `DELETE FROM job_skill WHERE skill_id = $1`
	_, err := r.db.Exec(query, skillID)
	return err
}

func (r *skillRepository) List(nameFilter string, limit, offset int) ([]models.Skill, error) {
	skills := []models.Skill{}
	query := `SELECT ` + skillColumns + ` FROM skills
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&skills, query, nameFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) Count(nameFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM skills WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, nameFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}
