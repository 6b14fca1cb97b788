package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidTraits      = errors.New("invalid personality traits")
	ErrInvalidInterests   = errors.New("invalid interest areas")
)

// Big Five trait keys; a submission must carry exactly this set.
var personalityTraitKeys = []string{
	"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism",
}

// RIASEC interest keys; same exact-set rule.
var interestAreaKeys = []string{
	"realistic", "investigative", "artistic", "social", "enterprising", "conventional",
}

type SubmitAssessmentInput struct {
	PersonalityTraits map[string]int
	InterestAreas     map[string]int
	WorkValues        map[string]any
}

type AssessmentItem struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PersonalityTraits map[string]int
	InterestAreas     map[string]int
	WorkValues        map[string]any
	CompletedAt       time.Time
}

// RecommendationNotifier is told when a user's recommendation set has been
// refreshed; delivery is best effort.
type RecommendationNotifier interface {
	RecommendationsReady(userID uuid.UUID)
}

type AssessmentUsecase interface {
	// Submit validates and stores a new assessment, marks onboarding
	// complete, and synchronously regenerates the user's recommendations.
	Submit(ctx context.Context, userID uuid.UUID, in SubmitAssessmentInput) (AssessmentItem, error)

	// Latest returns the most recently completed assessment.
	Latest(ctx context.Context, userID uuid.UUID) (AssessmentItem, error)
}

type Assessment struct {
	assessments repository.AssessmentRepository
	profiles    repository.ProfileRepository
	recs        RecommendationUsecase
	notifier    RecommendationNotifier
}

func NewAssessmentUsecase(
	assessments repository.AssessmentRepository,
	profiles repository.ProfileRepository,
	recs RecommendationUsecase,
	notifier RecommendationNotifier,
) *Assessment {
	return &Assessment{assessments: assessments, profiles: profiles, recs: recs, notifier: notifier}
}

func (u *Assessment) Submit(ctx context.Context, userID uuid.UUID, in SubmitAssessmentInput) (AssessmentItem, error) {
	if userID == uuid.Nil {
		return AssessmentItem{}, ErrUnauthorized
	}
	if !hasExactKeys(in.PersonalityTraits, personalityTraitKeys) {
		return AssessmentItem{}, ErrInvalidTraits
	}
	if !hasExactKeys(in.InterestAreas, interestAreaKeys) {
		return AssessmentItem{}, ErrInvalidInterests
	}

	created, err := u.assessments.Create(ctx, repository.Assessment{
		UserID:            userID,
		PersonalityTraits: in.PersonalityTraits,
		InterestAreas:     in.InterestAreas,
		WorkValues:        in.WorkValues,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return AssessmentItem{}, ErrUnauthorized
		}
		return AssessmentItem{}, ErrSaveFailed
	}

	// Completing an assessment is what finishes onboarding. A user without a
	// profile row simply has nothing to mark.
	if err := u.profiles.MarkOnboardingComplete(ctx, userID); err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return AssessmentItem{}, ErrInternal
	}

	if err := u.recs.Generate(ctx, userID); err != nil {
		return AssessmentItem{}, err
	}
	if u.notifier != nil {
		u.notifier.RecommendationsReady(userID)
	}

	return toAssessmentItem(created), nil
}

func (u *Assessment) Latest(ctx context.Context, userID uuid.UUID) (AssessmentItem, error) {
	a, err := u.assessments.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return AssessmentItem{}, ErrAssessmentNotFound
		}
		return AssessmentItem{}, ErrInternal
	}
	return toAssessmentItem(a), nil
}

// hasExactKeys checks the mapping carries exactly the fixed key set with
// every value on the 1-5 scale. Partial or over-specified submissions are
// rejected.
func hasExactKeys(m map[string]int, keys []string) bool {
	if len(m) != len(keys) {
		return false
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v < 1 || v > 5 {
			return false
		}
	}
	return true
}

func toAssessmentItem(a repository.Assessment) AssessmentItem {
	return AssessmentItem{
		ID:                a.ID,
		UserID:            a.UserID,
		PersonalityTraits: a.PersonalityTraits,
		InterestAreas:     a.InterestAreas,
		WorkValues:        a.WorkValues,
		CompletedAt:       a.CompletedAt,
	}
}
