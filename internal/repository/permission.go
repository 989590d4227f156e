package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const permissionColumns = `id, name, api_path, method, module, created_at, updated_at, created_by, updated_by`

type PermissionRepository interface {
	Create(permission *models.Permission) error
	GetByID(id int64) (*models.Permission, error)
	ExistsByPathMethodModule(apiPath, method, module string) (bool, error)
	Update(permission *models.Permission) error
	Delete(id int64) error
	DetachFromRoles(permissionID int64) error
	List(nameFilter string, limit, offset int) ([]models.Permission, error)
	Count(nameFilter string) (int64, error)
}

type permissionRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewPermissionRepository(db *sqlx.DB, log *logrus.Logger) PermissionRepository {
	return &permissionRepository{db: db, log: log}
}

func (r *permissionRepository) Create(permission *models.Permission) error {
	query := `INSERT INTO permissions (name, api_path, method, module, created_by)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, permission.Name, permission.APIPath, permission.Method,
		permission.Module, permission.CreatedBy).StructScan(permission)
}

func (r *permissionRepository) GetByID(id int64) (*models.Permission, error) {
	var permission models.Permission
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE id = $1`
	err := r.db.Get(&permission, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) ExistsByPathMethodModule(apiPath, method, module string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM permissions WHERE api_path = $1 AND method = $2 AND module = $3`
	err := r.db.Get(&count, query, apiPath, method, module)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *permissionRepository) Update(permission *models.Permission) error {
	query := `UPDATE permissions
	          SET name = $1, api_path = $2, method = $3, module = $4, updated_at = now(), updated_by = $5
	          WHERE id = $6
	          RETURNING updated_at`
	return r.db.QueryRowx(query, permission.Name, permission.APIPath, permission.Method,
		permission.Module, permission.UpdatedBy, permission.ID).StructScan(permission)
}

func (r *permissionRepository) Delete(id int64) error {
	query := `DELETE FROM permissions WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *permissionRepository) DetachFromRoles(permissionID int64) error {
	query := `DELETE FROM role_permission WHERE permission_id = $1`
	_, err := r.db.Exec(query, permissionID)
	return err
}

func (r *permissionRepository) List(nameFilter string, limit, offset int) ([]models.Permission, error) {
	permissions := []models.Permission{}
	query := `SELECT ` + permissionColumns + ` FROM permissions
	          WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	err := r.db.Select(&permissions, query, nameFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) Count(nameFilter string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM permissions WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	err := r.db.Get(&count, query, nameFilter)
	if err != nil {
		return 0, err
	}
	return count, nil
}
