package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubAssessmentUsecase struct {
	item      usecase.AssessmentItem
	submitErr error
	latestErr error
}

func (s *stubAssessmentUsecase) Submit(_ context.Context, _ uuid.UUID, _ usecase.SubmitAssessmentInput) (usecase.AssessmentItem, error) {
	return s.item, s.submitErr
}

func (s *stubAssessmentUsecase) Latest(context.Context, uuid.UUID) (usecase.AssessmentItem, error) {
	return s.item, s.latestErr
}

func TestAssessmentLatest_NoneYetIsEmptySuccess(t *testing.T) {
	uc := &stubAssessmentUsecase{latestErr: usecase.ErrAssessmentNotFound}
	app := newHandlerTestApp(uuid.New(), func(r fiber.Router) {
		NewAssessmentHandler(uc).RegisterRoutes(r)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessments/latest", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for a user without an assessment, got %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if !isJSONNull(env.Data) {
		t.Fatalf("expected null data, got %s", env.Data)
	}
}
