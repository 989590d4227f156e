package models

import "time"

type ResumeStatus string

const (
	ResumePending   ResumeStatus = "PENDING"
	ResumeReviewing ResumeStatus = "REVIEWING"
	ResumeApproved  ResumeStatus = "APPROVED"
	ResumeRejected  ResumeStatus = "REJECTED"
)

type Resume struct {
	ID        int64        `db:"id"`
	Email     string       `db:"email"`
	URL       string       `db:"url"`
	Status    ResumeStatus `db:"status"`
	UserID    int64        `db:"user_id"`
	JobID     int64        `db:"job_id"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	CreatedBy string       `db:"created_by"`
	UpdatedBy string       `db:"updated_by"`
}
