package review

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected reviewer
type Client struct {
	ReviewerID string
	Conn       *websocket.Conn
	Send       chan interface{} // Channel to send events to this client
	Done       chan struct{}    // Signal to stop reading/writing
}

// Hub manages all active reviewer WebSocket connections
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client // reviewer_id -> Client
}

// NewHub creates a new reviewer hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// AddClient registers a new reviewer connection
func (h *Hub) AddClient(reviewerID string, conn *websocket.Conn) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Disconnect existing connection for this reviewer if any
	if existing, ok := h.clients[reviewerID]; ok {
		close(existing.Done)
		existing.Conn.Close()
	}

	client := &Client{
		ReviewerID: reviewerID,
		Conn:       conn,
		Send:       make(chan interface{}, 32), // Buffered channel to handle bursts
		Done:       make(chan struct{}),
	}

	h.clients[reviewerID] = client
	return client
}

// RemoveClient unregisters exactly the given connection. If the reviewer
// already reconnected, the map holds the replacement client and the stale
// removal must not touch it.
func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[client.ReviewerID]; ok && current == client {
		close(client.Done)
		delete(h.clients, client.ReviewerID)
	}
}

// ConnectedReviewers returns the IDs of all connected reviewers
func (h *Hub) ConnectedReviewers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// Broadcast queues an event for every connected reviewer. Clients whose send
// buffer is full or that disconnected mid-send are skipped; delivery is best
// effort.
func (h *Hub) Broadcast(event any) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- event:
		case <-client.Done:
		default:
		}
	}
}
