package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const userColumns = `id, name, email, password, age, gender, address, refresh_token, company_id, role_id, created_at, updated_at, created_by, updated_by`

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRefreshTokenAndEmail(token, email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error
	UpdateRefreshToken(email, token string) error
	Delete(id int64) error
	DeleteByCompanyID(companyID int64) error
	List(nameFilter string, limit, offset int) ([]models.User, error)
	Count(nameFilter string) (int64, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewUserRepository(db *sqlx.DB, log *logrus.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) Create(user *models.User) error {
	query := `INSERT INTO users (name, email, password, age, gender, address, refresh_token, company_id, role_id, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, user.Name, user.Email, user.Password, user.Age, user.Gender,
		user.Address, user.RefreshToken, user.CompanyID, user.RoleID, user.CreatedBy).StructScan(user)
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByRefreshTokenAndEmail(token, email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1 AND email = $2`
	err := r.db.Get(&user, query, token, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE email = $1`
	err := r.db.Get(&count, query, email)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Update(user *models.User) error {
	query := `UPDATE users
	          SET name = $1, age = $2, gender = $3, address = $4, company_id = $5, role_id = $6,
	              updated_at = now(), updated_by = $7
	          WHERE id = $8
	          RETURNING updated_at`
	return r.db.QueryRowx(query, user.Name, user.Age, user.Gender, user.Address,
		user.CompanyID, user.RoleID, user.UpdatedBy, user.ID).StructScan(user)
}

func (r *userRepository) UpdateRefreshToken(email, token string) error {
	query := `UPDATE users SET refresh_token = $1, updated_at = now() WHERE email = $2`
	_, err := r.db.Exec(query, token, email)
	return err
}

func (r *userRepository) Delete(id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *userRepository) DeleteByCompanyID(companyID int64) error {
	query := `DELETE FROM users WHERE company_id = $1`
	_, err := r.db.Exec(query, companyID)
	return err
}

func (r *userRepository) List(nameFilter string, limit, offset int) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&users, query, nameFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(nameFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM users WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, nameFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}
