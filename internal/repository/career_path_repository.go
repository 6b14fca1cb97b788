package repository

import (
	"context"
	"encoding/json"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type CareerPath struct {
	ID             uuid.UUID
	Title          string
	Description    string
	SalaryMin      int
	SalaryMax      int
	DemandLevel    string
	GrowthOutlook  string
	RequiredSkills []string
	CreatedAt      time.Time
}

type CareerPathRepository interface {
	// List returns the full catalog in insertion order.
	List(ctx context.Context) ([]CareerPath, error)
}

type PostgresCareerPathRepository struct {
	db database.DB
}

func NewPostgresCareerPathRepository(db database.DB) *PostgresCareerPathRepository {
	return &PostgresCareerPathRepository{db: db}
}

func (r *PostgresCareerPathRepository) List(ctx context.Context) ([]CareerPath, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(salary_min, 0), COALESCE(salary_max, 0),
			COALESCE(demand_level, ''), COALESCE(growth_outlook, ''), COALESCE(required_skills, '[]'::jsonb), created_at
		 FROM career_paths
		 ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerPath, 0)
	for rows.Next() {
		var cp CareerPath
		var skills []byte
		if err := rows.Scan(&cp.ID, &cp.Title, &cp.Description, &cp.SalaryMin, &cp.SalaryMax, &cp.DemandLevel, &cp.GrowthOutlook, &skills, &cp.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &cp.RequiredSkills); err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
