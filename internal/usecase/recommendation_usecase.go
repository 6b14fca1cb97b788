package usecase

import (
	"context"
	"math/rand/v2"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const maxGeneratedRecommendations = 5

// fixedReasons is attached verbatim to every generated recommendation.
var fixedReasons = []string{
	"Strong skill alignment",
	"Growing market demand",
	"Matches your experience level",
}

// ScoreFunc rates a career path for a user. The user's skills are provided so
// a deterministic overlap-based scorer can be slotted in; the default scorer
// is the placeholder random policy and ignores them.
type ScoreFunc func(path repository.CareerPath, skills []repository.UserSkill) float64

// RandomScore draws a uniform integer score in [60,100].
func RandomScore(_ repository.CareerPath, _ []repository.UserSkill) float64 {
	return float64(60 + rand.IntN(41))
}

type RecommendationItem struct {
	ID           uuid.UUID
	CareerPathID uuid.UUID
	MatchScore   float64
	Reasons      []string
	IsBookmarked bool
	CareerPath   repository.CareerPath
}

type RecommendationUsecase interface {
	// Generate populates the user's recommendation set from the first five
	// catalog career paths. Existing rows are never overwritten, so repeat
	// invocations preserve earlier scores and bookmarks.
	Generate(ctx context.Context, userID uuid.UUID) error

	List(ctx context.Context, userID uuid.UUID) ([]RecommendationItem, error)

	// ToggleBookmark flips the bookmark for an existing recommendation and
	// silently does nothing when the pair has no recommendation row.
	ToggleBookmark(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) error
}

type Recommendation struct {
	paths      repository.CareerPathRepository
	userSkills repository.UserSkillRepository
	recs       repository.RecommendationRepository
	score      ScoreFunc
}

func NewRecommendationUsecase(
	paths repository.CareerPathRepository,
	userSkills repository.UserSkillRepository,
	recs repository.RecommendationRepository,
) *Recommendation {
	return &Recommendation{paths: paths, userSkills: userSkills, recs: recs, score: RandomScore}
}

// WithScoreFunc replaces the scoring policy.
func (u *Recommendation) WithScoreFunc(fn ScoreFunc) *Recommendation {
	if fn != nil {
		u.score = fn
	}
	return u
}

func (u *Recommendation) Generate(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}

	paths, err := u.paths.List(ctx)
	if err != nil {
		return ErrInternal
	}
	if len(paths) == 0 {
		return nil
	}
	if len(paths) > maxGeneratedRecommendations {
		paths = paths[:maxGeneratedRecommendations]
	}

	skills, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return ErrInternal
	}

	for _, p := range paths {
		_, err := u.recs.InsertIgnore(ctx, repository.RecommendationInsert{
			UserID:       userID,
			CareerPathID: p.ID,
			MatchScore:   u.score(p, skills),
			Reasons:      fixedReasons,
		})
		if err != nil {
			return ErrInternal
		}
	}
	return nil
}

func (u *Recommendation) List(ctx context.Context, userID uuid.UUID) ([]RecommendationItem, error) {
	rows, err := u.recs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RecommendationItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecommendationItem{
			ID:           r.ID,
			CareerPathID: r.CareerPathID,
			MatchScore:   r.MatchScore,
			Reasons:      r.Reasons,
			IsBookmarked: r.IsBookmarked,
			CareerPath:   r.CareerPath,
		})
	}
	return out, nil
}

func (u *Recommendation) ToggleBookmark(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) error {
	if userID == uuid.Nil || careerPathID == uuid.Nil {
		return ErrInvalidInput
	}
	if _, err := u.recs.ToggleBookmark(ctx, userID, careerPathID); err != nil {
		return ErrInternal
	}
	return nil
}
