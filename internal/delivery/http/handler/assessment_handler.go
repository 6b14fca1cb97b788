package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type submitAssessmentRequest struct {
	PersonalityTraits map[string]int `json:"personalityTraits"`
	InterestAreas     map[string]int `json:"interestAreas"`
	WorkValues        map[string]any `json:"workValues"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assessments")
	grp.Post("/", h.Submit)
	grp.Get("/latest", h.Latest)
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req submitAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Submit(c.Context(), userID, usecase.SubmitAssessmentInput{
		PersonalityTraits: req.PersonalityTraits,
		InterestAreas:     req.InterestAreas,
		WorkValues:        req.WorkValues,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTraits):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid personality traits", nil, err)
		case errors.Is(err, usecase.ErrInvalidInterests):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid interest areas", nil, err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toAssessmentResponse(item))
}

func (h *AssessmentHandler) Latest(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	item, err := h.uc.Latest(c.Context(), userID)
	if err != nil {
		// No assessment yet is a normal pre-onboarding state.
		if errors.Is(err, usecase.ErrAssessmentNotFound) {
			return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toAssessmentResponse(item))
}

func toAssessmentResponse(a usecase.AssessmentItem) dto.AssessmentResponse {
	return dto.AssessmentResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		PersonalityTraits: a.PersonalityTraits,
		InterestAreas:     a.InterestAreas,
		WorkValues:        a.WorkValues,
		CompletedAt:       a.CompletedAt,
	}
}
