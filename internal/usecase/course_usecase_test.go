package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func TestCourseUpdateProgress_RejectsOutOfRangeBeforeStore(t *testing.T) {
	enrollments := &mockEnrollmentRepo{}
	uc := NewCourseUsecase(&mockCourseRepo{}, enrollments, &mockUserSkillRepo{}, nil)

	for _, progress := range []int{-1, 101, 250} {
		err := uc.UpdateProgress(context.Background(), uuid.New(), uuid.New(), progress)
		if !errors.Is(err, ErrInvalidProgress) {
			t.Fatalf("progress %d: expected ErrInvalidProgress, got %v", progress, err)
		}
	}
	if len(enrollments.updates) != 0 {
		t.Fatalf("store must not be touched on invalid progress")
	}
}

func TestCourseUpdateProgress_CompletionAtHundred(t *testing.T) {
	enrollments := &mockEnrollmentRepo{}
	uc := NewCourseUsecase(&mockCourseRepo{}, enrollments, &mockUserSkillRepo{}, nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	if err := uc.UpdateProgress(context.Background(), uuid.New(), uuid.New(), 100); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(enrollments.updates) != 1 {
		t.Fatalf("expected 1 update")
	}
	up := enrollments.updates[0]
	if up.Status != repository.CourseStatusCompleted {
		t.Fatalf("expected completed status, got %s", up.Status)
	}
	if up.CompletedAt == nil || !up.CompletedAt.Equal(fixed) {
		t.Fatalf("expected completion timestamp %v, got %v", fixed, up.CompletedAt)
	}
}

func TestCourseUpdateProgress_PartialStaysInProgress(t *testing.T) {
	enrollments := &mockEnrollmentRepo{}
	uc := NewCourseUsecase(&mockCourseRepo{}, enrollments, &mockUserSkillRepo{}, nil)

	if err := uc.UpdateProgress(context.Background(), uuid.New(), uuid.New(), 40); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	up := enrollments.updates[0]
	if up.Status != repository.CourseStatusInProgress {
		t.Fatalf("expected in_progress, got %s", up.Status)
	}
	if up.CompletedAt != nil {
		t.Fatalf("expected nil completion timestamp")
	}
}

func TestCourseUpdateProgress_NoEnrollment(t *testing.T) {
	enrollments := &mockEnrollmentRepo{updateErr: repository.ErrEnrollmentNotFound}
	uc := NewCourseUsecase(&mockCourseRepo{}, enrollments, &mockUserSkillRepo{}, nil)

	err := uc.UpdateProgress(context.Background(), uuid.New(), uuid.New(), 50)
	if !errors.Is(err, ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}

func TestCourseEnroll_Success(t *testing.T) {
	courseID := uuid.New()
	uc := NewCourseUsecase(
		&mockCourseRepo{exists: map[uuid.UUID]bool{courseID: true}},
		&mockEnrollmentRepo{},
		&mockUserSkillRepo{},
		nil,
	)

	enr, err := uc.Enroll(context.Background(), uuid.New(), courseID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if enr.Status != repository.CourseStatusEnrolled {
		t.Fatalf("expected enrolled status, got %s", enr.Status)
	}
	if enr.Progress != 0 {
		t.Fatalf("expected zero progress")
	}
}

func TestCourseEnroll_UnknownCourse(t *testing.T) {
	uc := NewCourseUsecase(&mockCourseRepo{exists: map[uuid.UUID]bool{}}, &mockEnrollmentRepo{}, &mockUserSkillRepo{}, nil)

	_, err := uc.Enroll(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseEnroll_Duplicate(t *testing.T) {
	courseID := uuid.New()
	uc := NewCourseUsecase(
		&mockCourseRepo{exists: map[uuid.UUID]bool{courseID: true}},
		&mockEnrollmentRepo{enrollErr: repository.ErrAlreadyEnrolled},
		&mockUserSkillRepo{},
		nil,
	)

	_, err := uc.Enroll(context.Background(), uuid.New(), courseID)
	if !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestCourseRecommended_CacheMissThenHit(t *testing.T) {
	courses := &mockCourseRepo{courses: []repository.Course{
		{ID: uuid.New(), Title: "Intro to SQL", Provider: "Class Central"},
	}}
	cache := newMockCache()
	uc := NewCourseUsecase(courses, &mockEnrollmentRepo{}, &mockUserSkillRepo{}, cache)

	first, err := uc.Recommended(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 course")
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache fill")
	}

	courses.listErr = errors.New("db down")
	second, err := uc.Recommended(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected cache hit to bypass store, got %v", err)
	}
	if len(second) != 1 || second[0].Title != "Intro to SQL" {
		t.Fatalf("unexpected cached payload")
	}
}
