// Package events fans store change notifications out to WebSocket
// subscribers so dashboards can re-read instead of polling.
package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/finsaarthi/scholarhub/internal/store"
)

// Message is the wire format of a change notification.
type Message struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts change events
// to them.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound change events
	broadcast chan Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a hub. Call Run in a goroutine before publishing.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.With().Str("component", "events").Logger(),
	}
}

// Run processes register/unregister/broadcast requests until the
// process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug().Int("clients", h.clientCount()).Msg("Client subscribed")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug().Int("clients", h.clientCount()).Msg("Client unsubscribed")

		case msg := <-h.broadcast:
			raw, err := json.Marshal(msg)
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to marshal change event")
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- raw:
				default:
					// Slow consumer, drop it rather than block the hub
					go func(c *Client) { h.unregister <- c }(client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish queues a store change event for broadcast. Never blocks the
// mutating request; events are dropped if the hub backlog is full.
func (h *Hub) Publish(ev store.Event) {
	msg := Message{
		Entity:    ev.Entity,
		Action:    ev.Action,
		ID:        ev.ID,
		Timestamp: time.Now().UTC(),
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn().Str("entity", ev.Entity).Str("action", ev.Action).Msg("Event backlog full, dropping change event")
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
