package models

import "time"

type Permission struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	APIPath   string    `db:"api_path"`
	Method    string    `db:"method"`
	Module    string    `db:"module"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	CreatedBy string    `db:"created_by"`
	UpdatedBy string    `db:"updated_by"`
}
