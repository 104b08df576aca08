package assistant

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// WSEvent is one frame of the live chat protocol.
type WSEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventReply = "assistant_reply"
	EventError = "error"
)

// connection is a single live chat session. History lives on the
// connection, so each socket carries its own conversation context.
type connection struct {
	conn    *websocket.Conn
	send    chan []byte
	history []HistoryItem
}

// Hub runs interactive assistant sessions over websockets.
type Hub struct {
	mu      sync.RWMutex
	conns   map[*connection]struct{}
	service *Service
}

func NewHub(service *Service) *Hub {
	return &Hub{
		conns:   make(map[*connection]struct{}),
		service: service,
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; ok {
		delete(h.conns, c)
		close(c.send)
	}
}

// ServeWS upgrades the request and runs the session until disconnect.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("assistant: websocket upgrade failed: %v", err)
		return
	}

	c := &connection{
		conn: conn,
		send: make(chan []byte, 16),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var event struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(msg, &event); err != nil {
			c.push(&WSEvent{Type: EventError, Payload: "invalid frame"})
			continue
		}

		switch event.Type {
		case "chat":
			ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
			result := h.service.Chat(ctx, ChatRequestBody{
				Message: event.Message,
				History: c.history,
			})
			cancel()

			c.history = append(c.history,
				HistoryItem{Role: "user", Content: event.Message},
				HistoryItem{Role: "assistant", Content: result.Reply},
			)
			if len(c.history) > 20 {
				c.history = c.history[len(c.history)-20:]
			}

			c.push(&WSEvent{Type: EventReply, Payload: result})
		case "reset":
			c.history = nil
		}
	}
}

func (c *connection) push(event *WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
		// Client too slow, skip
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
