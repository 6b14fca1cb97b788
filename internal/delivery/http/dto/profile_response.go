package dto

import "github.com/google/uuid"

type ProfileResponse struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"userId"`
	AgeRange            string    `json:"ageRange,omitempty"`
	ExperienceLevel     string    `json:"experienceLevel,omitempty"`
	EducationLevel      string    `json:"educationLevel,omitempty"`
	CurrentField        string    `json:"currentField,omitempty"`
	CareerGoals         string    `json:"careerGoals,omitempty"`
	CompletedOnboarding bool      `json:"completedOnboarding"`
}
