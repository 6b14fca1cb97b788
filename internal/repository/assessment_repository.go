package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// Assessment rows are immutable: a retake inserts a new row and readers only
// ever look at the most recently completed one.
type Assessment struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PersonalityTraits map[string]int
	InterestAreas     map[string]int
	WorkValues        map[string]any
	CompletedAt       time.Time
}

type AssessmentRepository interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (Assessment, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) Create(ctx context.Context, a Assessment) (Assessment, error) {
	traits, err := json.Marshal(a.PersonalityTraits)
	if err != nil {
		return Assessment{}, err
	}
	interests, err := json.Marshal(a.InterestAreas)
	if err != nil {
		return Assessment{}, err
	}
	values, err := json.Marshal(a.WorkValues)
	if err != nil {
		return Assessment{}, err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO assessments (id, user_id, personality_traits, interest_areas, work_values)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING completed_at`,
		a.ID, a.UserID, traits, interests, values,
	)
	if err := row.Scan(&a.CompletedAt); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (r *PostgresAssessmentRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (Assessment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, personality_traits, interest_areas, COALESCE(work_values, '{}'::jsonb), completed_at
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY completed_at DESC
		 LIMIT 1`,
		userID,
	)

	var a Assessment
	var traits, interests, values []byte
	if err := row.Scan(&a.ID, &a.UserID, &traits, &interests, &values, &a.CompletedAt); err != nil {
		if isNoRows(err) {
			return Assessment{}, ErrAssessmentNotFound
		}
		return Assessment{}, err
	}

	if err := json.Unmarshal(traits, &a.PersonalityTraits); err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(interests, &a.InterestAreas); err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(values, &a.WorkValues); err != nil {
		return Assessment{}, err
	}
	return a, nil
}
