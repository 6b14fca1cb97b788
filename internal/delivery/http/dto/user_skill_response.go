package dto

import "github.com/google/uuid"

type UserSkillResponse struct {
	ID           uuid.UUID `json:"id"`
	SkillID      uuid.UUID `json:"skillId"`
	SkillName    string    `json:"skillName"`
	CurrentLevel int       `json:"currentLevel"`
	TargetLevel  *int      `json:"targetLevel,omitempty"`
	IsLearning   bool      `json:"isLearning"`
}
