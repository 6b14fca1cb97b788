package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentResponse struct {
	ID                uuid.UUID      `json:"id"`
	UserID            uuid.UUID      `json:"userId"`
	PersonalityTraits map[string]int `json:"personalityTraits"`
	InterestAreas     map[string]int `json:"interestAreas"`
	WorkValues        map[string]any `json:"workValues,omitempty"`
	CompletedAt       time.Time      `json:"completedAt"`
}
