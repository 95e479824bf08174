package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/gorilla/websocket"
)

const clientSendBuffer = 256

type WebSocketHandler struct {
	hub      *brackets.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler accepts connections from allowedOrigins; "*" or an empty
// list allows any origin.
func NewWebSocketHandler(hub *brackets.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// ServeWs godoc
// @Summary Live tournament updates
// @Description Upgrades to a websocket that receives PLAYER_REGISTERED, MATCH_REPORTED, MATCHES_DELETED and PLAYERS_DELETED events.
// @Tags tournament
// @Success 101 "Switching protocols"
// @Router /ws [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.WarnContext(r.Context(), "websocket upgrade failed", slog.String("remote_addr", r.RemoteAddr), slog.Any("error", err))
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, clientSendBuffer),
		Room: brackets.TournamentRoom,
	}
	if !h.hub.Join(client) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = conn.Close()
		return
	}
	slog.DebugContext(r.Context(), "websocket client connected", slog.String("remote_addr", r.RemoteAddr))

	go client.WritePump()
	go client.ReadPump()
}
