package usecase

import (
	"context"
	"testing"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func somePaths(n int) []repository.CareerPath {
	out := make([]repository.CareerPath, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, repository.CareerPath{ID: uuid.New(), Title: "Path"})
	}
	return out
}

func TestRecommendationGenerate_CapsAtFive(t *testing.T) {
	recs := &mockRecRepo{}
	uc := NewRecommendationUsecase(
		&mockCareerPathRepo{paths: somePaths(8)},
		&mockUserSkillRepo{},
		recs,
	)

	if err := uc.Generate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs.inserted) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs.inserted))
	}
}

func TestRecommendationGenerate_FewerPathsThanCap(t *testing.T) {
	recs := &mockRecRepo{}
	uc := NewRecommendationUsecase(
		&mockCareerPathRepo{paths: somePaths(3)},
		&mockUserSkillRepo{},
		recs,
	)

	if err := uc.Generate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs.inserted) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs.inserted))
	}
}

func TestRecommendationGenerate_ScoresAndReasons(t *testing.T) {
	recs := &mockRecRepo{}
	uc := NewRecommendationUsecase(
		&mockCareerPathRepo{paths: somePaths(5)},
		&mockUserSkillRepo{},
		recs,
	)

	if err := uc.Generate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, in := range recs.inserted {
		if in.MatchScore < 60 || in.MatchScore > 100 {
			t.Fatalf("score %v outside [60,100]", in.MatchScore)
		}
		if len(in.Reasons) != 3 {
			t.Fatalf("expected 3 reasons, got %d", len(in.Reasons))
		}
	}
}

func TestRecommendationGenerate_NeverOverwritesExisting(t *testing.T) {
	paths := somePaths(5)
	recs := &mockRecRepo{existing: map[uuid.UUID]bool{
		paths[0].ID: true,
		paths[1].ID: true,
	}}
	uc := NewRecommendationUsecase(
		&mockCareerPathRepo{paths: paths},
		&mockUserSkillRepo{},
		recs,
	)

	if err := uc.Generate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs.inserted) != 3 {
		t.Fatalf("expected 3 new rows, got %d", len(recs.inserted))
	}
}

func TestRecommendationGenerate_CustomScorerSeesSkills(t *testing.T) {
	skillID := uuid.New()
	var seen int
	uc := NewRecommendationUsecase(
		&mockCareerPathRepo{paths: somePaths(2)},
		&mockUserSkillRepo{items: []repository.UserSkill{{SkillID: skillID}}},
		&mockRecRepo{},
	).WithScoreFunc(func(_ repository.CareerPath, skills []repository.UserSkill) float64 {
		seen = len(skills)
		return 75
	})

	if err := uc.Generate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if seen != 1 {
		t.Fatalf("scorer saw %d skills, expected 1", seen)
	}
}

func TestRecommendationGenerate_EmptyCatalog(t *testing.T) {
	recs := &mockRecRepo{}
	uc := NewRecommendationUsecase(&mockCareerPathRepo{}, &mockUserSkillRepo{}, recs)

	if err := uc.Generate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs.inserted) != 0 {
		t.Fatalf("expected no insertions")
	}
}

func TestToggleBookmark_NoRecommendationIsSilent(t *testing.T) {
	recs := &mockRecRepo{toggleOK: false}
	uc := NewRecommendationUsecase(&mockCareerPathRepo{}, &mockUserSkillRepo{}, recs)

	if err := uc.ToggleBookmark(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("expected nil err for missing recommendation, got %v", err)
	}
	if len(recs.toggled) != 1 {
		t.Fatalf("expected toggle to be attempted")
	}
}

func TestRandomScoreRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		s := RandomScore(repository.CareerPath{}, nil)
		if s < 60 || s > 100 {
			t.Fatalf("score %v outside [60,100]", s)
		}
	}
}
