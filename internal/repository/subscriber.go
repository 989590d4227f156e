package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const subscriberColumns = `id, email, name, created_at, updated_at, created_by, updated_by`

type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByID(id int64) (*models.Subscriber, error)
	GetByEmail(email string) (*models.Subscriber, error)
	ExistsByEmail(email string) (bool, error)
	Update(subscriber *models.Subscriber) error
	Delete(id int64) error
	GetSkills(subscriberID int64) ([]models.Skill, error)
	ReplaceSkills(subscriberID int64, skillIDs []int64) error
	DetachSkill(skillID int64) error
}

type subscriberRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewSubscriberRepository(db *sqlx.DB, log *logrus.Logger) SubscriberRepository {
	return &subscriberRepository{db: db, log: log}
}

func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	query := `INSERT INTO subscribers (email, name, created_by) VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query, subscriber.Email, subscriber.Name, subscriber.CreatedBy).StructScan(subscriber)
}

func (r *subscriberRepository) GetByID(id int64) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`
	err := r.db.Get(&subscriber, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE email = $1`
	err := r.db.Get(&subscriber, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepository) ExistsByEmail(email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM subscribers WHERE email = $1`
	err := r.db.Get(&count, query, email)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriberRepository) Update(subscriber *models.Subscriber) error {
	query := `UPDATE subscribers SET name = $1, updated_at = now(), updated_by = $2
	          WHERE id = $3
	          RETURNING updated_at`
	return r.db.QueryRowx(query, subscriber.Name, subscriber.UpdatedBy, subscriber.ID).StructScan(subscriber)
}

func (r *subscriberRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM subscribers WHERE id = $1`, id)
	return err
}

func (r *subscriberRepository) GetSkills(subscriberID int64) ([]models.Skill, error) {
	skills := []models.Skill{}
	query := `SELECT s.id, s.name, s.created_at, s.updated_at, s.created_by, s.updated_by
	          FROM skills s
	          JOIN subscriber_skill ss ON ss.skill_id = s.id
	          WHERE ss.subscriber_id = $1
	          ORDER BY s.id`
	err := r.db.Select(&skills, query, subscriberID)
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *subscriberRepository) ReplaceSkills(subscriberID int64, skillIDs []int64) error {
	if _, err := r.db.Exec(`DELETE FROM subscriber_skill WHERE subscriber_id = $1`, subscriberID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		if _, err := r.db.Exec(`INSERT INTO subscriber_skill (subscriber_id, skill_id) VALUES ($1, $2)`, subscriberID, skillID); err != nil {
			return err
		}
	}
	return nil
}

// DetachSkill removes a skill from every subscription that follows it.
func (r *subscriberRepository) DetachSkill(skillID int64) error {
	_, err := r.db.Exec(`DELETE FROM subscriber_skill WHERE skill_id = $1`, skillID)
	return err
}
