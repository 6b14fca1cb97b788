package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks connected clients grouped by user, so recommendation events can
// be delivered to every open session of a single user without waking the rest.
type Hub struct {
	clients    map[*Client]bool
	byUser     map[uuid.UUID]map[*Client]bool
	send       chan targetedMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type targetedMessage struct {
	userID  uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		send:       make(chan targetedMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			if h.byUser[client.userID] == nil {
				h.byUser[client.userID] = make(map[*Client]bool)
			}
			h.byUser[client.userID][client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user_id=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				if owned := h.byUser[client.userID]; owned != nil {
					delete(owned, client)
					if len(owned) == 0 {
						delete(h.byUser, client.userID)
					}
				}
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user_id=%s total_clients=%d", client.userID, total)
			}

		case msg := <-h.send:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.byUser[msg.userID]))
			for c := range h.byUser[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}
			if h.logger != nil && len(targets) > 0 {
				h.logger.Printf("WS delivered | user_id=%s sessions=%d", msg.userID, len(targets))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendToUser queues a payload for every open session of userID. Drops the
// message when the hub buffer is full rather than blocking the caller.
func (h *Hub) SendToUser(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.send <- targetedMessage{userID: userID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS send dropped | user_id=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
