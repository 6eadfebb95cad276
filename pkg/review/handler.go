package review

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades reviewer connections and pumps hub events to them
type Handler struct {
	hub    *Hub
	logger interface {
		Printf(string, ...interface{})
	}
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub:    hub,
		logger: log.New(log.Writer(), "[review] ", log.LstdFlags),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, validate origin properly
		return true
	},
}

// HandleWebSocketGin validates reviewer_id from query and upgrades to WebSocket.
func (h *Handler) HandleWebSocketGin(c *gin.Context) {
	reviewerID := c.Query("reviewer_id")
	if _, err := uuid.Parse(reviewerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reviewer_id, must be UUID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	client := h.hub.AddClient(reviewerID, conn)
	h.logger.Printf("reviewer %s connected", reviewerID)

	go h.readLoop(client)
	go h.writeLoop(client)
}

// readLoop drains the connection; the feed is one-way, so inbound frames are
// discarded, but reading is required to notice closes and answer pings.
func (h *Handler) readLoop(client *Client) {
	defer func() {
		h.hub.RemoveClient(client)
		client.Conn.Close()
		h.logger.Printf("reviewer %s disconnected", client.ReviewerID)
	}()

	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-client.Done:
			return
		default:
		}

		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for reviewer %s: %v", client.ReviewerID, err)
			}
			return
		}
	}
}

// writeLoop writes queued events to the WebSocket connection
func (h *Handler) writeLoop(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-client.Done:
			return

		case event, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteJSON(event); err != nil {
				h.logger.Printf("write error for reviewer %s: %v", client.ReviewerID, err)
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Printf("ping error for reviewer %s: %v", client.ReviewerID, err)
				return
			}
		}
	}
}
