package repository

import (
	"context"
	"encoding/json"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type Course struct {
	ID              uuid.UUID
	Title           string
	Provider        string
	Description     string
	URL             string
	Duration        string
	DifficultyLevel string
	Cost            string
	SkillsCovered   []string
	Rating          float64
	CreatedAt       time.Time
}

type CourseRepository interface {
	// ListRecommended returns up to limit catalog rows. The skillIDs hint is
	// accepted for a future relevance filter; the current listing is
	// unfiltered catalog order.
	ListRecommended(ctx context.Context, skillIDs []uuid.UUID, limit int) ([]Course, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

const courseColumns = `id, title, provider, COALESCE(description, ''), COALESCE(url, ''), COALESCE(duration, ''), COALESCE(difficulty_level, ''), COALESCE(cost, ''), COALESCE(skills_covered, '[]'::jsonb), COALESCE(rating, 0), created_at`

func (r *PostgresCourseRepository) ListRecommended(ctx context.Context, skillIDs []uuid.UUID, limit int) ([]Course, error) {
	if limit <= 0 {
		limit = 10
	}
	_ = skillIDs

	rows, err := r.db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY created_at ASC, id ASC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Course, 0, limit)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanCourse(rows database.Rows) (Course, error) {
	var c Course
	var skills []byte
	err := rows.Scan(&c.ID, &c.Title, &c.Provider, &c.Description, &c.URL, &c.Duration, &c.DifficultyLevel, &c.Cost, &skills, &c.Rating, &c.CreatedAt)
	if err != nil {
		return Course{}, err
	}
	if err := json.Unmarshal(skills, &c.SkillsCovered); err != nil {
		return Course{}, err
	}
	return c, nil
}
