package models

import "time"

type JobLevel string

const (
	LevelIntern  JobLevel = "INTERN"
	LevelFresher JobLevel = "FRESHER"
	LevelJunior  JobLevel = "JUNIOR"
	LevelMiddle  JobLevel = "MIDDLE"
	LevelSenior  JobLevel = "SENIOR"
)

type Job struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Location    string     `db:"location"`
	Salary      float64    `db:"salary"`
	Quantity    int        `db:"quantity"`
	Level       JobLevel   `db:"level"`
	Description string     `db:"description"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Active      bool       `db:"active"`
	CompanyID   *int64     `db:"company_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	CreatedBy   string     `db:"created_by"`
	UpdatedBy   string     `db:"updated_by"`

	// Loaded from job_skill, not a column.
	Skills []Skill `db:"-"`
}
