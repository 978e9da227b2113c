package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Hub tracks the connected clients and fans broadcast frames out to
// all of them. Clients whose send buffer is full are dropped rather
// than allowed to stall the rest.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu     sync.Mutex
	logger *zap.Logger
}

// NewHub creates a Hub. Call Run before registering clients.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		logger:     logger,
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				client.closeSend()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client connecté", zap.Int("clients", n))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client déconnecté", zap.Int("clients", n))

		case frame := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.enqueue(frame) {
					// Slow client: drop it instead of blocking the hub.
					client.closeSend()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event string, data interface{}) {
	frame, err := marshalEnvelope(event, data, "")
	if err != nil {
		h.logger.Error("échec de la sérialisation du broadcast",
			zap.String("event", event), zap.Error(err))
		return
	}
	h.broadcast <- frame
}
