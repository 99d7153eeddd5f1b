package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/websocket"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS governs the REST API; the feed is public and read-only
	},
}

type WebSocketHandler struct {
	hub    *websocket.Hub
	logger logging.Logger
}

func NewWebSocketHandler(hub *websocket.Hub, logger logging.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// Handle subscribes the caller to the content change feed.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	client := websocket.NewClient(h.hub, conn)
	client.Greet()
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
