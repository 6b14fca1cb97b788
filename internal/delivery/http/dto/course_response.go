package dto

import (
	"time"

	"github.com/google/uuid"
)

type CourseResponse struct {
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

type EnrollmentResponse struct {
	ID          uuid.UUID      `json:"id"`
	CourseID    uuid.UUID      `json:"courseId"`
	Status      string         `json:"status"`
	Progress    int            `json:"progress"`
	StartedAt   time.Time      `json:"startedAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Course      CourseResponse `json:"course"`
}
