package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Message is the envelope pushed to dashboard clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Hub fans events out to every connected dashboard websocket. Publishing
// is best-effort: a dead client is dropped, never retried.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// HandleConnection upgrades the request and keeps the client registered
// until its read loop fails.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade failed:", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Publish sends {event, payload} to all connected clients. The channel
// argument is ignored here; every dashboard socket sees every event.
func (h *Hub) Publish(_ string, event string, payload interface{}) error {
	messageBytes, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			log.Println("websocket write failed, dropping client:", err)
			client.Close()
			delete(h.clients, client)
		}
	}
	return nil
}
