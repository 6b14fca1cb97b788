package usecase

import (
	"context"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SkillUsecase interface {
	List(ctx context.Context) ([]SkillItem, error)
}

type SkillCatalog struct {
	repo  repository.SkillRepository
	cache Cache
}

func NewSkillUsecase(repo repository.SkillRepository, cache Cache) *SkillCatalog {
	return &SkillCatalog{repo: repo, cache: cache}
}

// List serves the skill catalog through the cache when one is configured.
// Cache failures fall back to the store rather than failing the request.
func (s *SkillCatalog) List(ctx context.Context) ([]SkillItem, error) {
	if s.cache != nil {
		var cached []SkillItem
		if ok, err := s.cache.GetJSON(ctx, skillCatalogCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(skills))
	for _, sk := range skills {
		out = append(out, SkillItem{
			ID:          sk.ID,
			Name:        sk.Name,
			Category:    sk.Category,
			Description: sk.Description,
			CreatedAt:   sk.CreatedAt,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, skillCatalogCacheKey, out, skillCatalogCacheTTL)
	}
	return out, nil
}
