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

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type upsertUserSkillRequest struct {
	SkillID      uuid.UUID `json:"skillId"`
	CurrentLevel int       `json:"currentLevel"`
	TargetLevel  *int      `json:"targetLevel"`
	IsLearning   bool      `json:"isLearning"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/user-skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Upsert)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	res := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toUserSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *UserSkillHandler) Upsert(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req upsertUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Upsert(c.Context(), userID, usecase.UpsertUserSkillInput{
		SkillID:      req.SkillID,
		CurrentLevel: req.CurrentLevel,
		TargetLevel:  req.TargetLevel,
		IsLearning:   req.IsLearning,
	})
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toUserSkillResponse(saved))
}

func toUserSkillResponse(it usecase.UserSkillItem) dto.UserSkillResponse {
	return dto.UserSkillResponse{
		ID:           it.ID,
		SkillID:      it.SkillID,
		SkillName:    it.SkillName,
		CurrentLevel: it.CurrentLevel,
		TargetLevel:  it.TargetLevel,
		IsLearning:   it.IsLearning,
	}
}

func mapUserSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill level", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
