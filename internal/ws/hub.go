package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"stocktrack_backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser dashboards connect cross-origin; auth happens at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client wraps a connection with a mutex: gorilla/websocket allows only one
// concurrent writer per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub tracks connected dashboard clients and pushes created notifications
// to them. Broadcast failures only drop the offending client; they never
// affect the operation that produced the notification.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// HandleConnection upgrades an HTTP request and keeps the client registered
// until its read loop ends.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.readLoop(c)
}

func (h *Hub) readLoop(c *client) {
	defer h.drop(c)
	for {
		// Clients never send meaningful payloads; the read keeps the
		// connection alive and detects closure.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.conn.Close()
}

// BroadcastNotification sends a notification to every connected client.
func (h *Hub) BroadcastNotification(n models.Notification) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.mu.Lock()
		err := c.conn.WriteJSON(n)
		c.mu.Unlock()
		if err != nil {
			log.Debug().Err(err).Msg("dropping websocket client after write failure")
			h.drop(c)
		}
	}
}
