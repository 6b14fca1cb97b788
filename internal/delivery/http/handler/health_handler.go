package handler

import (
	"context"

	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Check)
}

// Check reports per-dependency status. The cache is optional, so a down
// Redis degrades the report without failing the endpoint; a down database
// returns 503.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	data := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		data["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		data["cache"] = "down"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "unhealthy", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
