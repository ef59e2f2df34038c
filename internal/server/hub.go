// internal/server/hub.go
package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// upgrader accepts any origin: the server only ever listens for a local
// browser.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks the connected live-reload clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  *zap.SugaredLogger
}

func newHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	h.logger.Debugw("live-reload client connected", "remote", conn.RemoteAddr().String())
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		h.logger.Debugw("live-reload client disconnected", "remote", conn.RemoteAddr().String())
	}
}

// broadcastMessage sends message to every client and returns how many
// received it. Clients that fail are dropped.
func (h *Hub) broadcastMessage(message []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	sent := 0
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			h.logger.Debugw("error writing to client", "error", err)
			client.Close()
			delete(h.clients, client)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// serveWs upgrades the request and keeps the connection registered until
// the peer goes away. Clients never send anything meaningful.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warnw("websocket upgrade error", "error", err)
		return
	}
	hub.register(conn)
	defer hub.unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
