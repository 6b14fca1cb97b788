package ws

import (
	"log"
	"net/http"
	"strings"

	"career-compass/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	tokens jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, tokens jwt.Service, logger *log.Logger) *Handler {
	return &Handler{hub: hub, tokens: tokens, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleRecommendationsWS upgrades the connection and subscribes it to the
// caller's recommendation events. Browsers cannot set an Authorization header
// on a websocket handshake, so the access token rides in the token query
// parameter instead.
func (h *Handler) HandleRecommendationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return fiber.ErrUnauthorized
	}
	claims, err := h.tokens.ValidateToken(token)
	if err != nil || h.tokens.IsRefreshToken(claims) {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
