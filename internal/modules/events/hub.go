package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is a typed notification pushed to subscribed clients. Types in use:
// subscriptionUpdated, orderUpdated, profileUpdated.
type Event struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// client serializes writes: gorilla/websocket allows one concurrent writer
// per connection.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(event Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(event)
}

// Hub fans events out to connected websocket clients. A user has at most
// one live connection; a new connection replaces the old one.
type Hub struct {
	connections map[int64]*client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.connections[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[userID]; exists && c != nil {
		_ = c.conn.Close()
		delete(h.connections, userID)
	}
}

// Publish broadcasts a typed event to every connected client. Dead
// connections are dropped on write failure.
func (h *Hub) Publish(eventType string, payload any) {
	event := Event{Type: eventType, Payload: payload, At: time.Now()}

	h.mutex.RLock()
	targets := make(map[int64]*client, len(h.connections))
	for id, c := range h.connections {
		targets[id] = c
	}
	h.mutex.RUnlock()

	for id, c := range targets {
		if c == nil {
			continue
		}
		if err := c.write(event); err != nil {
			h.Unregister(id)
		}
	}
}

// SendToUser delivers an event to one user only. Returns false when the
// user has no live connection.
func (h *Hub) SendToUser(userID int64, eventType string, payload any) bool {
	h.mutex.RLock()
	c, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || c == nil {
		return false
	}

	if err := c.write(Event{Type: eventType, Payload: payload, At: time.Now()}); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.connections {
		if c != nil {
			_ = c.conn.Close()
		}
		delete(h.connections, userID)
	}
}
