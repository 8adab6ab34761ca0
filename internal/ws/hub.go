package ws

import (
	"log"
	"sync"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
)

// Hub maintains the set of connected viewers and fans feed events into each
// viewer's event loop.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub. The caller starts Run and wires the hub into the
// websocket handler and the feed subscriber.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister requests. Closing the event channel here
// terminates the client's view loop, which in turn closes the send channel
// it writes to; the hub never closes send itself.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] viewer %s connected (viewers=%d)", client.viewerID, count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.events)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] viewer %s disconnected (viewers=%d)", client.viewerID, count)
		}
	}
}

// Broadcast hands a feed event to every connected viewer. Each viewer applies
// it on its own event loop; a viewer with a full buffer drops the event and
// recovers on its next reload.
func (h *Hub) Broadcast(ev feed.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.events <- ev:
		default:
			log.Printf("[WS] event buffer full for viewer %s, dropping %s %s", client.viewerID, ev.Type, ev.Table)
		}
	}
}
