package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type RecommendationsReadyEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// Notifier pushes recommendation lifecycle events over the default hub. A
// zero Notifier is usable and drops events when no hub has been installed.
type Notifier struct{}

func (Notifier) RecommendationsReady(userID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if userID == uuid.Nil {
		return
	}

	evt := RecommendationsReadyEvent{
		Type:      "recommendations_ready",
		UserID:    userID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.SendToUser(userID, b)
}
