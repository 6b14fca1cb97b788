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

type CourseHandler struct {
	uc usecase.CourseUsecase
}

type updateProgressRequest struct {
	Progress int `json:"progress"`
}

func NewCourseHandler(uc usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/courses/recommended", h.Recommended)
	r.Get("/user-courses", h.ListEnrollments)
	r.Post("/courses/:courseId/enroll", h.Enroll)
	r.Patch("/courses/:courseId/progress", h.UpdateProgress)
}

func (h *CourseHandler) Recommended(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.Recommended(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.CourseResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toCourseResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CourseHandler) ListEnrollments(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListEnrollments(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.EnrollmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toEnrollmentResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CourseHandler) Enroll(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	enr, err := h.uc.Enroll(c.Context(), userID, courseID)
	if err != nil {
		return mapCourseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toEnrollmentResponse(enr))
}

func (h *CourseHandler) UpdateProgress(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateProgress(c.Context(), userID, courseID, req.Progress); err != nil {
		return mapCourseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapCourseUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCourseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
	case errors.Is(err, usecase.ErrEnrollmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Enrollment not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyEnrolled):
		return middleware.NewAppError(fiber.StatusConflict, "Already enrolled", nil, err)
	case errors.Is(err, usecase.ErrInvalidProgress):
		return middleware.NewAppError(fiber.StatusBadRequest, "Progress must be between 0 and 100", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func toCourseResponse(it usecase.CourseItem) dto.CourseResponse {
	return dto.CourseResponse{
		ID:              it.ID,
		Title:           it.Title,
		Provider:        it.Provider,
		Description:     it.Description,
		URL:             it.URL,
		Duration:        it.Duration,
		DifficultyLevel: it.DifficultyLevel,
		Cost:            it.Cost,
		SkillsCovered:   it.SkillsCovered,
		Rating:          it.Rating,
	}
}

func toEnrollmentResponse(it usecase.EnrollmentItem) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		ID:          it.ID,
		CourseID:    it.CourseID,
		Status:      it.Status,
		Progress:    it.Progress,
		StartedAt:   it.StartedAt,
		CompletedAt: it.CompletedAt,
		Course:      toCourseResponse(it.Course),
	}
}
