package models

import "time"

type Role struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	CreatedBy   string    `db:"created_by"`
	UpdatedBy   string    `db:"updated_by"`

	// Loaded from role_permission, not a column.
	Permissions []Permission `db:"-"`
}
