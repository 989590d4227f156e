package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const roleColumns = `id, name, description, active, created_at, updated_at, created_by, updated_by`

type RoleRepository interface {
	Create(role *models.Role) error
	GetByID(id int64) (*models.Role, error)
	ExistsByName(name string) (bool, error)
	Update(role *models.Role) error
	Delete(id int64) error
	List(nameFilter string, limit, offset int) ([]models.Role, error)
	Count(nameFilter string) (int64, error)
	GetPermissions(roleID int64) ([]models.Permission, error)
	ReplacePermissions(roleID int64, permissionIDs []int64) error
}

type roleRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewRoleRepository(db *sqlx.DB, log *logrus.Logger) RoleRepository {
	return &roleRepository{db: db, log: log}
}

func (r *roleRepository) Create(role *models.Role) error {
	query := `INSERT INTO roles (name, description, active, created_by) VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, role.Name, role.Description, role.Active, role.CreatedBy).StructScan(role)
}

func (r *roleRepository) GetByID(id int64) (*models.Role, error) {
	var role models.Role
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	err := r.db.Get(&role, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) ExistsByName(name string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM roles WHERE name = $1`
	err := r.db.Get(&count, query, name)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *roleRepository) Update(role *models.Role) error {
	query := `UPDATE roles SET name = $1, description = $2, active = $3, updated_at = now(), updated_by = $4
	          WHERE id = $5
	          RETURNING updated_at`
	return r.db.QueryRowx(query, role.Name, role.Description, role.Active, role.UpdatedBy, role.ID).StructScan(role)
}

func (r *roleRepository) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM role_permission WHERE role_id = $1`, id); err != nil {
		return err
	}
	_, err := r.db.Exec(`DELETE FROM roles WHERE id = $1`, id)
	return err
}

func (r *roleRepository) List(nameFilter string, limit, offset int) ([]models.Role, error) {
	roles := []models.Role{}
	query := `SELECT ` + roleColumns + ` FROM roles
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&roles, query, nameFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) Count(nameFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM roles WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, nameFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *roleRepository) GetPermissions(roleID int64) ([]models.Permission, error) {
	permissions := []models.Permission{}
	query := `SELECT p.id, p.name, p.api_path, p.method, p.module, p.created_at, p.updated_at, p.created_by, p.updated_by
	          FROM permissions p
	          JOIN role_permission rp ON rp.permission_id = p.id
	          WHERE rp.role_id = $1
	          ORDER BY p.id`
	err := r.db.Select(&permissions, query, roleID)
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *roleRepository) ReplacePermissions(roleID int64, permissionIDs []int64) error {
	if _, err := r.db.Exec(`DELETE FROM role_permission WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	for _, permissionID := range permissionIDs {
		if _, err := r.db.Exec(`INSERT INTO role_permission (role_id, permission_id) VALUES ($1, $2)`, roleID, permissionID); err != nil {
			return err
		}
	}
	return nil
}
