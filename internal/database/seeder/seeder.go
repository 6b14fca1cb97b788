// Package seeder fills the catalog tables (skills, career paths, courses)
// with their baseline rows. Every seeder is idempotent; reruns on a seeded
// database are no-ops.
package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults returns the seeders the server runs at startup, in dependency
// order.
func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		CareerPathsSeeder{},
		CoursesSeeder{},
	}
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
