package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func TestSkillList_CacheMissPopulatesCache(t *testing.T) {
	repo := &mockSkillRepo{skills: []repository.Skill{
		{ID: uuid.New(), Name: "Go", Category: "Programming", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Name: "SQL", Category: "Data", CreatedAt: time.Now().UTC()},
	}}
	cache := newMockCache()
	uc := NewSkillUsecase(repo, cache)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(items))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 store call, got %d", repo.listCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected catalog to be cached")
	}
}

func TestSkillList_CacheHitSkipsStore(t *testing.T) {
	repo := &mockSkillRepo{skills: []repository.Skill{
		{ID: uuid.New(), Name: "Go", Category: "Programming"},
	}}
	cache := newMockCache()
	uc := NewSkillUsecase(repo, cache)

	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("warm-up: %v", err)
	}

	repo.listErr = errors.New("store must not be reached")
	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Go" {
		t.Fatalf("unexpected cached payload: %+v", items)
	}
	if repo.listCalls != 1 {
		t.Fatalf("store hit despite warm cache: %d calls", repo.listCalls)
	}
}

func TestSkillList_NilCacheStillServes(t *testing.T) {
	repo := &mockSkillRepo{skills: []repository.Skill{{ID: uuid.New(), Name: "Go"}}}
	uc := NewSkillUsecase(repo, nil)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(items))
	}
}
