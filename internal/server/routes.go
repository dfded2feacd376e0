package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/signaling"
)

// Configure the websocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  64 * 1024, // 64 KB
	WriteBufferSize: 64 * 1024, // 64 KB

	// We need to check the origin, but for development, we can allow all.
	// In production, you'd check r.Header.Get("Origin") against your frontend's domain
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all connections for now
	},
}

// ServeWs returns an http.HandlerFunc that handles websocket requests.
// Every connection gets a fresh random id and its own read/write pumps.
func ServeWs(hub *signaling.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("failed to upgrade connection", "error", err)
			return
		}

		client, err := signaling.NewClient(hub, conn, uuid.NewString())
		if err != nil {
			// Id collision; give up on this connection.
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()
	}
}
