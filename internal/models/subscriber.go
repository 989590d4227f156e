package models

import "time"

// Subscriber is an email recipient of job alerts, matched on the skills
// they follow.
type Subscriber struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	CreatedBy string    `db:"created_by"`
	UpdatedBy string    `db:"updated_by"`

	// Loaded from subscriber_skill, not a column.
	Skills []Skill `db:"-"`
}
