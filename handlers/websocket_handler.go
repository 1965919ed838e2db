package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cobrasfc/matchday/engine"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Spectators connect from phones on whatever network the pitch has;
	// origin checking is left open like the polling endpoints.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub *engine.Hub
}

func NewWebSocketHandler(hub *engine.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs handles GET /ws: upgrades the connection and registers the client
// for update events.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := &engine.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
