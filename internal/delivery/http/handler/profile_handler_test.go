package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubProfileUsecase struct {
	item    usecase.ProfileItem
	getErr  error
	saveErr error
}

func (s *stubProfileUsecase) Get(context.Context, uuid.UUID) (usecase.ProfileItem, error) {
	return s.item, s.getErr
}

func (s *stubProfileUsecase) Save(_ context.Context, _ uuid.UUID, _ usecase.SaveProfileInput) (usecase.ProfileItem, error) {
	return s.item, s.saveErr
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newHandlerTestApp wires the error middleware and a stand-in for the auth
// middleware that stamps the given user id into locals.
func newHandlerTestApp(userID uuid.UUID, register func(fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, userID)
		return c.Next()
	})
	register(app.Group("/api"))
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, body)
	}
	return env
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func TestProfileGet_MissingProfileIsEmptySuccess(t *testing.T) {
	uc := &stubProfileUsecase{getErr: usecase.ErrProfileNotFound}
	app := newHandlerTestApp(uuid.New(), func(r fiber.Router) {
		NewProfileHandler(uc).RegisterRoutes(r)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for a user without a profile, got %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if !isJSONNull(env.Data) {
		t.Fatalf("expected null data, got %s", env.Data)
	}
}

func TestProfileGet_ExistingProfile(t *testing.T) {
	userID := uuid.New()
	uc := &stubProfileUsecase{item: usecase.ProfileItem{
		ID:       uuid.New(),
		UserID:   userID,
		AgeRange: "25-34",
	}}
	app := newHandlerTestApp(userID, func(r fiber.Router) {
		NewProfileHandler(uc).RegisterRoutes(r)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if isJSONNull(env.Data) {
		t.Fatalf("expected profile payload, got null")
	}
}
