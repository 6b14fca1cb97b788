package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"career-compass/internal/database"
)

type CareerPathsSeeder struct{}

func (CareerPathsSeeder) Name() string { return "career_paths" }

func (CareerPathsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "career_paths",
		"id", "title", "description", "salary_min", "salary_max",
		"demand_level", "growth_outlook", "required_skills", "created_at"); err != nil {
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
		Title          string
		Description    string
		SalaryMin      int
		SalaryMax      int
		DemandLevel    string
		GrowthOutlook  string
		RequiredSkills []string
	}{
		{
			Title:          "Data Scientist",
			Description:    "Builds statistical and machine-learning models to answer business questions",
			SalaryMin:      95000, SalaryMax: 165000,
			DemandLevel:    "high", GrowthOutlook: "growing",
			RequiredSkills: []string{"Python", "SQL", "Statistics", "Machine Learning"},
		},
		{
			Title:          "Software Engineer",
			Description:    "Designs, builds and maintains software systems",
			SalaryMin:      90000, SalaryMax: 170000,
			DemandLevel:    "high", GrowthOutlook: "growing",
			RequiredSkills: []string{"Python", "SQL", "Problem Solving", "Cloud Computing"},
		},
		{
			Title:          "Product Manager",
			Description:    "Owns product strategy and coordinates delivery across teams",
			SalaryMin:      100000, SalaryMax: 160000,
			DemandLevel:    "high", GrowthOutlook: "stable",
			RequiredSkills: []string{"Communication", "Project Management", "Leadership"},
		},
		{
			Title:          "UX Designer",
			Description:    "Researches users and designs product interfaces around their needs",
			SalaryMin:      75000, SalaryMax: 130000,
			DemandLevel:    "medium", GrowthOutlook: "growing",
			RequiredSkills: []string{"UX Design", "Communication", "Problem Solving"},
		},
		{
			Title:          "Data Analyst",
			Description:    "Explores and visualizes data to support decision making",
			SalaryMin:      60000, SalaryMax: 100000,
			DemandLevel:    "high", GrowthOutlook: "stable",
			RequiredSkills: []string{"SQL", "Statistics", "Data Visualization"},
		},
		{
			Title:          "Digital Marketing Manager",
			Description:    "Plans and measures marketing campaigns across digital channels",
			SalaryMin:      65000, SalaryMax: 115000,
			DemandLevel:    "medium", GrowthOutlook: "stable",
			RequiredSkills: []string{"Digital Marketing", "Communication", "Data Visualization"},
		},
		{
			Title:          "Engineering Manager",
			Description:    "Leads an engineering team and its technical roadmap",
			SalaryMin:      130000, SalaryMax: 200000,
			DemandLevel:    "medium", GrowthOutlook: "stable",
			RequiredSkills: []string{"Leadership", "Project Management", "Communication"},
		},
	}

	for _, it := range items {
		skillsJSON, err := json.Marshal(it.RequiredSkills)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO career_paths (id, title, description, salary_min, salary_max, demand_level, growth_outlook, required_skills)
			 SELECT gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7
			 WHERE NOT EXISTS (SELECT 1 FROM career_paths WHERE title = $1)`,
			it.Title,
			it.Description,
			it.SalaryMin,
			it.SalaryMax,
			it.DemandLevel,
			it.GrowthOutlook,
			skillsJSON,
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
