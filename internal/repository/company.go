package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const companyColumns = `id, name, description, address, logo, created_at, updated_at, created_by, updated_by`

type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id int64) (*models.Company, error)
	Update(company *models.Company) error
	Delete(id int64) error
	List(nameFilter string, limit, offset int) ([]models.Company, error)
	Count(nameFilter string) (int64, error)
}

type companyRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewCompanyRepository(db *sqlx.DB, log *logrus.Logger) CompanyRepository {
	return &companyRepository{db: db, log: log}
}

func (r *companyRepository) Create(company *models.Company) error {
	query := `INSERT INTO companies (name, description, address, logo, created_by)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, company.Name, company.Description, company.Address,
		company.Logo, company.CreatedBy).StructScan(company)
}

func (r *companyRepository) GetByID(id int64) (*models.Company, error) {
	var company models.Company
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	err := r.db.Get(&company, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(company *models.Company) error {
	query := `UPDATE companies
	          SET name = $1, description = $2, address = $3, logo = $4, updated_at = now(), updated_by = $5
	          WHERE id = $6
	          RETURNING updated_at`
	return r.db.QueryRowx(query, company.Name, company.Description, company.Address,
		company.Logo, company.UpdatedBy, company.ID).StructScan(company)
}

func (r *companyRepository) Delete(id int64) error {
	query := `DELETE FROM companies WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *companyRepository) List(nameFilter string, limit, offset int) ([]models.Company, error) {
	companies := []models.Company{}
	query := `SELECT ` + companyColumns + ` FROM companies
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&companies, query, nameFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) Count(nameFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM companies WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, nameFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}
