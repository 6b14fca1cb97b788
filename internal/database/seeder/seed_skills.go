package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "description", "created_at"); err != nil {
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
		Name        string
		Category    string
		Description string
	}{
		{Name: "Python", Category: "technical", Description: "General-purpose programming language widely used in data science"},
		{Name: "SQL", Category: "technical", Description: "Querying and managing relational databases"},
		{Name: "Statistics", Category: "technical", Description: "Statistical analysis and inference"},
		{Name: "Machine Learning", Category: "technical", Description: "Building predictive models from data"},
		{Name: "Data Visualization", Category: "technical", Description: "Communicating findings through charts and dashboards"},
		{Name: "Cloud Computing", Category: "technical", Description: "Deploying and operating systems on cloud platforms"},
		{Name: "Project Management", Category: "soft", Description: "Planning and coordinating work across a team"},
		{Name: "Communication", Category: "soft", Description: "Presenting ideas clearly to technical and non-technical audiences"},
		{Name: "Leadership", Category: "soft", Description: "Guiding teams and making decisions under uncertainty"},
		{Name: "Problem Solving", Category: "soft", Description: "Breaking down ambiguous problems into workable steps"},
		{Name: "UX Design", Category: "domain-specific", Description: "Designing usable product experiences"},
		{Name: "Digital Marketing", Category: "domain-specific", Description: "Running and measuring online marketing campaigns"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category, description) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
			it.Description,
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
