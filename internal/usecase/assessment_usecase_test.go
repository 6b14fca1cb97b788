package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func validAssessmentInput() SubmitAssessmentInput {
	return SubmitAssessmentInput{
		PersonalityTraits: map[string]int{
			"openness": 4, "conscientiousness": 3, "extraversion": 2,
			"agreeableness": 5, "neuroticism": 1,
		},
		InterestAreas: map[string]int{
			"realistic": 3, "investigative": 5, "artistic": 2,
			"social": 3, "enterprising": 4, "conventional": 1,
		},
		WorkValues: map[string]any{"autonomy": "high"},
	}
}

func newAssessmentFixture() (*Assessment, *mockAssessmentRepo, *mockProfileRepo, *mockRecommender, *mockNotifier) {
	assessments := &mockAssessmentRepo{}
	profiles := &mockProfileRepo{}
	recs := &mockRecommender{}
	notifier := &mockNotifier{}
	uc := NewAssessmentUsecase(assessments, profiles, recs, notifier)
	return uc, assessments, profiles, recs, notifier
}

func TestAssessmentSubmit_Success(t *testing.T) {
	uc, assessments, profiles, recs, notifier := newAssessmentFixture()
	userID := uuid.New()

	item, err := uc.Submit(context.Background(), userID, validAssessmentInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.UserID != userID {
		t.Fatalf("unexpected user id")
	}
	if len(assessments.created) != 1 {
		t.Fatalf("expected 1 stored assessment")
	}
	if len(profiles.marked) != 1 || profiles.marked[0] != userID {
		t.Fatalf("expected onboarding marked complete")
	}
	if len(recs.generated) != 1 || recs.generated[0] != userID {
		t.Fatalf("expected recommendations generated")
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != userID {
		t.Fatalf("expected notification")
	}
}

func TestAssessmentSubmit_MissingTraitKey(t *testing.T) {
	uc, _, _, _, _ := newAssessmentFixture()

	in := validAssessmentInput()
	delete(in.PersonalityTraits, "openness")

	_, err := uc.Submit(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidTraits) {
		t.Fatalf("expected ErrInvalidTraits, got %v", err)
	}
}

func TestAssessmentSubmit_ExtraTraitKey(t *testing.T) {
	uc, _, _, _, _ := newAssessmentFixture()

	in := validAssessmentInput()
	in.PersonalityTraits["curiosity"] = 3

	_, err := uc.Submit(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidTraits) {
		t.Fatalf("expected ErrInvalidTraits, got %v", err)
	}
}

func TestAssessmentSubmit_TraitValueOutOfRange(t *testing.T) {
	uc, _, _, _, _ := newAssessmentFixture()

	in := validAssessmentInput()
	in.PersonalityTraits["openness"] = 6

	_, err := uc.Submit(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidTraits) {
		t.Fatalf("expected ErrInvalidTraits, got %v", err)
	}
}

func TestAssessmentSubmit_InvalidInterests(t *testing.T) {
	uc, _, _, _, _ := newAssessmentFixture()

	in := validAssessmentInput()
	in.InterestAreas["realistic"] = 0

	_, err := uc.Submit(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidInterests) {
		t.Fatalf("expected ErrInvalidInterests, got %v", err)
	}
}

func TestAssessmentSubmit_NoProfileIsTolerated(t *testing.T) {
	assessments := &mockAssessmentRepo{}
	profiles := &mockProfileRepo{markErr: repository.ErrProfileNotFound}
	recs := &mockRecommender{}
	uc := NewAssessmentUsecase(assessments, profiles, recs, &mockNotifier{})

	if _, err := uc.Submit(context.Background(), uuid.New(), validAssessmentInput()); err != nil {
		t.Fatalf("missing profile should not fail submission, got %v", err)
	}
	if len(recs.generated) != 1 {
		t.Fatalf("expected generation to proceed")
	}
}

func TestAssessmentSubmit_GenerationFailureSurfaces(t *testing.T) {
	uc := NewAssessmentUsecase(&mockAssessmentRepo{}, &mockProfileRepo{}, &mockRecommender{genErr: ErrInternal}, &mockNotifier{})

	_, err := uc.Submit(context.Background(), uuid.New(), validAssessmentInput())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAssessmentLatest_NotFound(t *testing.T) {
	uc := NewAssessmentUsecase(&mockAssessmentRepo{latestErr: repository.ErrAssessmentNotFound}, &mockProfileRepo{}, &mockRecommender{}, &mockNotifier{})

	_, err := uc.Latest(context.Background(), uuid.New())
	if !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}
