package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// RecognitionHandler broadcasts the live recognition state via
// WebSocket so the preview page can show the hold-progress ring.
type RecognitionHandler struct {
	source  RecognitionSource
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewRecognitionHandler creates a handler fed by the given source.
func NewRecognitionHandler(source RecognitionSource) *RecognitionHandler {
	h := &RecognitionHandler{
		source:  source,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *RecognitionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the recognition state to all connected clients.
func (h *RecognitionHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		snap := h.source.Snapshot()
		letter := ""
		if snap.HasLetter {
			letter = string(snap.Letter)
		}

		msg, _ := json.Marshal(map[string]any{
			"letter":    letter,
			"progress":  snap.Progress,
			"state":     snap.State.String(),
			"available": h.source.IsAvailable(),
			"error":     h.source.ErrMessage(),
			"timestamp": time.Now().UnixMilli(),
		})

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
