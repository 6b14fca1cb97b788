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

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type saveProfileRequest struct {
	AgeRange        string `json:"ageRange"`
	ExperienceLevel string `json:"experienceLevel"`
	EducationLevel  string `json:"educationLevel"`
	CurrentField    string `json:"currentField"`
	CareerGoals     string `json:"careerGoals"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/profile")
	grp.Get("/", h.Get)
	grp.Post("/", h.Save)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prof, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		// A user without a profile simply has not onboarded yet.
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof))
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prof, err := h.uc.Save(c.Context(), userID, usecase.SaveProfileInput{
		AgeRange:        req.AgeRange,
		ExperienceLevel: req.ExperienceLevel,
		EducationLevel:  req.EducationLevel,
		CurrentField:    req.CurrentField,
		CareerGoals:     req.CareerGoals,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof))
}

func toProfileResponse(p usecase.ProfileItem) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		AgeRange:            p.AgeRange,
		ExperienceLevel:     p.ExperienceLevel,
		EducationLevel:      p.EducationLevel,
		CurrentField:        p.CurrentField,
		CareerGoals:         p.CareerGoals,
		CompletedOnboarding: p.CompletedOnboarding,
	}
}
