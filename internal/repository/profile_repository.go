package repository

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type UserProfile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	AgeRange            string
	ExperienceLevel     string
	EducationLevel      string
	CurrentField        string
	CareerGoals         string
	CompletedOnboarding bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ProfileUpsert struct {
	UserID          uuid.UUID
	AgeRange        string
	ExperienceLevel string
	EducationLevel  string
	CurrentField    string
	CareerGoals     string
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (UserProfile, error)
	Upsert(ctx context.Context, p ProfileUpsert) (UserProfile, error)
	MarkOnboardingComplete(ctx context.Context, userID uuid.UUID) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, COALESCE(age_range, ''), COALESCE(experience_level, ''), COALESCE(education_level, ''), COALESCE(current_field, ''), COALESCE(career_goals, ''), completed_onboarding, created_at, updated_at`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (UserProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

// Upsert is a single atomic insert-or-update keyed on user_id. Two concurrent
// saves for the same new user both succeed; the later one wins. The
// completed_onboarding flag is deliberately left out of the update set so a
// profile re-save never un-completes onboarding.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p ProfileUpsert) (UserProfile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profiles (id, user_id, age_range, experience_level, education_level, current_field, career_goals)
		 VALUES (gen_random_uuid(), $1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		 ON CONFLICT (user_id) DO UPDATE SET
			age_range = EXCLUDED.age_range,
			experience_level = EXCLUDED.experience_level,
			education_level = EXCLUDED.education_level,
			current_field = EXCLUDED.current_field,
			career_goals = EXCLUDED.career_goals,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.UserID, p.AgeRange, p.ExperienceLevel, p.EducationLevel, p.CurrentField, p.CareerGoals,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) MarkOnboardingComplete(ctx context.Context, userID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE user_profiles SET completed_onboarding = TRUE, updated_at = now() WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func scanProfile(row database.Row) (UserProfile, error) {
	var p UserProfile
	err := row.Scan(&p.ID, &p.UserID, &p.AgeRange, &p.ExperienceLevel, &p.EducationLevel, &p.CurrentField, &p.CareerGoals, &p.CompletedOnboarding, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return UserProfile{}, ErrProfileNotFound
		}
		return UserProfile{}, err
	}
	return p, nil
}
