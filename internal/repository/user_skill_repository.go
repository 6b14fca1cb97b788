package repository

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

type UserSkill struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	SkillID      uuid.UUID
	SkillName    string
	CurrentLevel int
	TargetLevel  *int
	IsLearning   bool
	UpdatedAt    time.Time
}

type UserSkillUpsert struct {
	UserID       uuid.UUID
	SkillID      uuid.UUID
	CurrentLevel int
	TargetLevel  *int
	IsLearning   bool
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	Upsert(ctx context.Context, us UserSkillUpsert) (UserSkill, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

const userSkillSelect = `
	SELECT us.id, us.user_id, us.skill_id, s.name, us.current_level, us.target_level, us.is_learning, us.updated_at
	FROM user_skills us
	JOIN skills s ON s.id = us.skill_id`

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		userSkillSelect+` WHERE us.user_id = $1 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.CurrentLevel, &us.TargetLevel, &us.IsLearning, &us.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert is atomic on the (user_id, skill_id) unique key: a duplicate
// submission updates level, target and learning flag in place and refreshes
// updated_at instead of erroring.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, us UserSkillUpsert) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, current_level, target_level, is_learning)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET
			current_level = EXCLUDED.current_level,
			target_level = EXCLUDED.target_level,
			is_learning = EXCLUDED.is_learning,
			updated_at = now()
		 RETURNING id`,
		uuid.New(), us.UserID, us.SkillID, us.CurrentLevel, us.TargetLevel, us.IsLearning,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return UserSkill{}, err
	}

	saved := r.db.QueryRow(ctx, userSkillSelect+` WHERE us.id = $1`, id)
	var out UserSkill
	if err := saved.Scan(&out.ID, &out.UserID, &out.SkillID, &out.SkillName, &out.CurrentLevel, &out.TargetLevel, &out.IsLearning, &out.UpdatedAt); err != nil {
		if isNoRows(err) {
			return UserSkill{}, ErrUserSkillNotFound
		}
		return UserSkill{}, err
	}
	return out, nil
}
