package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/career-recommendations")
	grp.Get("/", h.List)
	grp.Post("/:careerPathId/bookmark", h.ToggleBookmark)
}

func (h *RecommendationHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.RecommendationResponse{
			ID:           it.ID,
			CareerPathID: it.CareerPathID,
			MatchScore:   it.MatchScore,
			Reasons:      it.Reasons,
			IsBookmarked: it.IsBookmarked,
			CareerPath:   toCareerPathResponse(it.CareerPath),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RecommendationHandler) ToggleBookmark(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	careerPathID, err := uuid.Parse(c.Params("careerPathId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ToggleBookmark(c.Context(), userID, careerPathID); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toCareerPathResponse(p repository.CareerPath) dto.CareerPathResponse {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return dto.CareerPathResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		SalaryMin:      p.SalaryMin,
		SalaryMax:      p.SalaryMax,
		DemandLevel:    p.DemandLevel,
		GrowthOutlook:  p.GrowthOutlook,
		RequiredSkills: skills,
	}
}
