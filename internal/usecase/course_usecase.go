package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
)

const recommendedCoursesLimit = 10

type CourseItem struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Provider        string    `json:"provider"`
	Description     string    `json:"description,omitempty"`
	URL             string    `json:"url,omitempty"`
	Duration        string    `json:"duration,omitempty"`
	DifficultyLevel string    `json:"difficultyLevel,omitempty"`
	Cost            string    `json:"cost,omitempty"`
	SkillsCovered   []string  `json:"skillsCovered"`
	Rating          float64   `json:"rating"`
}

type EnrollmentItem struct {
	ID          uuid.UUID  `json:"id"`
	CourseID    uuid.UUID  `json:"courseId"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Course      CourseItem `json:"course"`
}

type CourseUsecase interface {
	Recommended(ctx context.Context, userID uuid.UUID) ([]CourseItem, error)
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]EnrollmentItem, error)
	Enroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) (EnrollmentItem, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, courseID uuid.UUID, progress int) error
}

type Courses struct {
	courses     repository.CourseRepository
	enrollments repository.UserCourseRepository
	userSkills  repository.UserSkillRepository
	cache       Cache
	now         func() time.Time
}

func NewCourseUsecase(
	courses repository.CourseRepository,
	enrollments repository.UserCourseRepository,
	userSkills repository.UserSkillRepository,
	cache Cache,
) *Courses {
	return &Courses{
		courses:     courses,
		enrollments: enrollments,
		userSkills:  userSkills,
		cache:       cache,
		now:         time.Now,
	}
}

// Recommended lists up to ten catalog courses. The caller's learning skills
// are passed down as a relevance hint; the listing itself is not filtered by
// them yet, so the result is cacheable across users.
func (c *Courses) Recommended(ctx context.Context, userID uuid.UUID) ([]CourseItem, error) {
	if c.cache != nil {
		var cached []CourseItem
		if ok, err := c.cache.GetJSON(ctx, recommendedCoursesCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	var skillIDs []uuid.UUID
	if userID != uuid.Nil {
		if owned, err := c.userSkills.FindByUserID(ctx, userID); err == nil {
			for _, us := range owned {
				if us.IsLearning {
					skillIDs = append(skillIDs, us.SkillID)
				}
			}
		}
	}

	courses, err := c.courses.ListRecommended(ctx, skillIDs, recommendedCoursesLimit)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CourseItem, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseItem(course))
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, recommendedCoursesCacheKey, out, recommendedCoursesCacheTTL)
	}
	return out, nil
}

func (c *Courses) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]EnrollmentItem, error) {
	items, err := c.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]EnrollmentItem, 0, len(items))
	for _, it := range items {
		out = append(out, EnrollmentItem{
			ID:          it.ID,
			CourseID:    it.CourseID,
			Status:      it.Status,
			Progress:    it.Progress,
			StartedAt:   it.StartedAt,
			CompletedAt: it.CompletedAt,
			Course:      toCourseItem(it.Course),
		})
	}
	return out, nil
}

func (c *Courses) Enroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) (EnrollmentItem, error) {
	if userID == uuid.Nil {
		return EnrollmentItem{}, ErrUnauthorized
	}
	if courseID == uuid.Nil {
		return EnrollmentItem{}, ErrInvalidInput
	}

	exists, err := c.courses.ExistsByID(ctx, courseID)
	if err != nil {
		return EnrollmentItem{}, ErrInternal
	}
	if !exists {
		return EnrollmentItem{}, ErrCourseNotFound
	}

	uc, err := c.enrollments.Enroll(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			return EnrollmentItem{}, ErrAlreadyEnrolled
		}
		if repository.IsForeignKeyViolation(err) {
			return EnrollmentItem{}, ErrCourseNotFound
		}
		return EnrollmentItem{}, ErrSaveFailed
	}
	return EnrollmentItem{
		ID:        uc.ID,
		CourseID:  uc.CourseID,
		Status:    uc.Status,
		Progress:  uc.Progress,
		StartedAt: uc.StartedAt,
	}, nil
}

// UpdateProgress validates the value before touching the store, so an
// out-of-range submission leaves the enrollment untouched. Reaching 100 marks
// the enrollment completed and stamps completed_at; anything below stays
// in_progress with no completion timestamp.
func (c *Courses) UpdateProgress(ctx context.Context, userID uuid.UUID, courseID uuid.UUID, progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}

	up := repository.ProgressUpdate{
		UserID:   userID,
		CourseID: courseID,
		Progress: progress,
		Status:   repository.CourseStatusInProgress,
	}
	if progress >= 100 {
		completedAt := c.now().UTC()
		up.Status = repository.CourseStatusCompleted
		up.CompletedAt = &completedAt
	}

	if err := c.enrollments.UpdateProgress(ctx, up); err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return ErrEnrollmentNotFound
		}
		return ErrSaveFailed
	}
	return nil
}

func toCourseItem(course repository.Course) CourseItem {
	skills := course.SkillsCovered
	if skills == nil {
		skills = []string{}
	}
	return CourseItem{
		ID:              course.ID,
		Title:           course.Title,
		Provider:        course.Provider,
		Description:     course.Description,
		URL:             course.URL,
		Duration:        course.Duration,
		DifficultyLevel: course.DifficultyLevel,
		Cost:            course.Cost,
		SkillsCovered:   skills,
		Rating:          course.Rating,
	}
}
