package repository

import (
	"context"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

// Skill is a global catalog entry, not user-owned.
type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, COALESCE(description, ''), created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
