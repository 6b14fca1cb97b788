package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

// CoursesSeeder provides a small starter catalog so the recommended-courses
// endpoint has data before the scraper has ever run.
type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses",
		"id", "title", "provider", "description", "url", "duration",
		"difficulty_level", "cost", "skills_covered", "rating", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title           string
		Provider        string
		Description     string
		URL             string
		Duration        string
		DifficultyLevel string
		Cost            string
		Rating          float64
	}{
		{
			Title: "Python for Everybody", Provider: "Coursera",
			Description: "Programming fundamentals with Python",
			URL:         "https://www.coursera.org/specializations/python",
			Duration:    "8 weeks", DifficultyLevel: "beginner", Cost: "free", Rating: 4.8,
		},
		{
			Title: "Databases and SQL for Data Science", Provider: "Coursera",
			Description: "Relational databases and SQL from scratch",
			URL:         "https://www.coursera.org/learn/sql-data-science",
			Duration:    "6 weeks", DifficultyLevel: "beginner", Cost: "free", Rating: 4.6,
		},
		{
			Title: "Machine Learning", Provider: "Coursera",
			Description: "Classic introduction to supervised and unsupervised learning",
			URL:         "https://www.coursera.org/learn/machine-learning",
			Duration:    "11 weeks", DifficultyLevel: "intermediate", Cost: "free", Rating: 4.9,
		},
		{
			Title: "Statistics and Probability", Provider: "edX",
			Description: "Foundations of statistical reasoning",
			URL:         "https://www.edx.org/learn/statistics",
			Duration:    "10 weeks", DifficultyLevel: "intermediate", Cost: "free", Rating: 4.5,
		},
		{
			Title: "Data Visualization with Tableau", Provider: "LinkedIn Learning",
			Description: "Building dashboards and visual stories",
			URL:         "https://www.linkedin.com/learning/topics/tableau",
			Duration:    "4 weeks", DifficultyLevel: "beginner", Cost: "subscription", Rating: 4.4,
		},
		{
			Title: "Foundations of Project Management", Provider: "Coursera",
			Description: "Project planning, execution and stakeholder management",
			URL:         "https://www.coursera.org/learn/project-management-foundations",
			Duration:    "6 weeks", DifficultyLevel: "beginner", Cost: "free", Rating: 4.7,
		},
		{
			Title: "UX Design Fundamentals", Provider: "edX",
			Description: "User research, wireframing and usability testing",
			URL:         "https://www.edx.org/learn/ux-design",
			Duration:    "8 weeks", DifficultyLevel: "beginner", Cost: "free", Rating: 4.3,
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO courses (id, title, provider, description, url, duration, difficulty_level, cost, rating)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (provider, title) DO NOTHING`,
			it.Title,
			it.Provider,
			it.Description,
			it.URL,
			it.Duration,
			it.DifficultyLevel,
			it.Cost,
			it.Rating,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
