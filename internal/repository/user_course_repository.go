package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled")
)

const (
	CourseStatusEnrolled   = "enrolled"
	CourseStatusInProgress = "in_progress"
	CourseStatusCompleted  = "completed"
	CourseStatusDropped    = "dropped"
)

type UserCourse struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CourseID    uuid.UUID
	Status      string
	Progress    int
	StartedAt   time.Time
	CompletedAt *time.Time
}

type UserCourseWithCourse struct {
	UserCourse
	Course Course
}

type ProgressUpdate struct {
	UserID      uuid.UUID
	CourseID    uuid.UUID
	Progress    int
	Status      string
	CompletedAt *time.Time
}

type UserCourseRepository interface {
	// Enroll inserts a fresh enrollment row. A second enrollment for the same
	// (userID, courseID) pair violates the unique key and is reported as
	// ErrAlreadyEnrolled.
	Enroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) (UserCourse, error)

	// ListByUser returns enrollment+course pairs; enrollments whose course
	// has been deleted are excluded by the inner join.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]UserCourseWithCourse, error)

	// UpdateProgress applies a progress/status change keyed on
	// (userID, courseID). ErrEnrollmentNotFound when no row matches.
	UpdateProgress(ctx context.Context, up ProgressUpdate) error
}

type PostgresUserCourseRepository struct {
	db database.DB
}

func NewPostgresUserCourseRepository(db database.DB) *PostgresUserCourseRepository {
	return &PostgresUserCourseRepository{db: db}
}

func (r *PostgresUserCourseRepository) Enroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) (UserCourse, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_courses (id, user_id, course_id, status, progress)
		 VALUES ($1, $2, $3, $4, 0)
		 RETURNING id, user_id, course_id, status, progress, started_at, completed_at`,
		uuid.New(), userID, courseID, CourseStatusEnrolled,
	)

	var uc UserCourse
	if err := row.Scan(&uc.ID, &uc.UserID, &uc.CourseID, &uc.Status, &uc.Progress, &uc.StartedAt, &uc.CompletedAt); err != nil {
		if IsUniqueViolation(err) {
			return UserCourse{}, ErrAlreadyEnrolled
		}
		return UserCourse{}, err
	}
	return uc, nil
}

func (r *PostgresUserCourseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]UserCourseWithCourse, error) {
	rows, err := r.db.Query(ctx,
		`SELECT uc.id, uc.user_id, uc.course_id, uc.status, uc.progress, uc.started_at, uc.completed_at,
			c.id, c.title, c.provider, COALESCE(c.description, ''), COALESCE(c.url, ''), COALESCE(c.duration, ''),
			COALESCE(c.difficulty_level, ''), COALESCE(c.cost, ''), COALESCE(c.skills_covered, '[]'::jsonb), COALESCE(c.rating, 0), c.created_at
		 FROM user_courses uc
		 JOIN courses c ON c.id = uc.course_id
		 WHERE uc.user_id = $1
		 ORDER BY uc.started_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserCourseWithCourse, 0)
	for rows.Next() {
		var item UserCourseWithCourse
		var skills []byte
		err := rows.Scan(
			&item.ID, &item.UserID, &item.CourseID, &item.Status, &item.Progress, &item.StartedAt, &item.CompletedAt,
			&item.Course.ID, &item.Course.Title, &item.Course.Provider, &item.Course.Description, &item.Course.URL, &item.Course.Duration,
			&item.Course.DifficultyLevel, &item.Course.Cost, &skills, &item.Course.Rating, &item.Course.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &item.Course.SkillsCovered); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserCourseRepository) UpdateProgress(ctx context.Context, up ProgressUpdate) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE user_courses
		 SET progress = $3, status = $4, completed_at = $5
		 WHERE user_id = $1 AND course_id = $2`,
		up.UserID, up.CourseID, up.Progress, up.Status, up.CompletedAt,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}
