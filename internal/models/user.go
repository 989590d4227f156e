package models

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Password     string    `db:"password"`
	Age          int       `db:"age"`
	Gender       Gender    `db:"gender"`
	Address      string    `db:"address"`
	RefreshToken string    `db:"refresh_token"`
	CompanyID    *int64    `db:"company_id"`
	RoleID       *int64    `db:"role_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	CreatedBy    string    `db:"created_by"`
	UpdatedBy    string    `db:"updated_by"`
}
