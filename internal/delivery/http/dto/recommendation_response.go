package dto

import "github.com/google/uuid"

type CareerPathResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	SalaryMin      int       `json:"salaryMin"`
	SalaryMax      int       `json:"salaryMax"`
	DemandLevel    string    `json:"demandLevel,omitempty"`
	GrowthOutlook  string    `json:"growthOutlook,omitempty"`
	RequiredSkills []string  `json:"requiredSkills"`
}

type RecommendationResponse struct {
	ID           uuid.UUID          `json:"id"`
	CareerPathID uuid.UUID          `json:"careerPathId"`
	MatchScore   float64            `json:"matchScore"`
	Reasons      []string           `json:"reasons"`
	IsBookmarked bool               `json:"isBookmarked"`
	CareerPath   CareerPathResponse `json:"careerPath"`
}
