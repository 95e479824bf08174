package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/swiss-tournament/brackets"
)

func TestOriginChecker(t *testing.T) {
	cases := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "https://evil.example", want: true},
		{name: "empty list", allowed: nil, origin: "https://any.example", want: true},
		{name: "listed", allowed: []string{"https://club.example"}, origin: "https://club.example", want: true},
		{name: "not listed", allowed: []string{"https://club.example"}, origin: "https://evil.example", want: false},
		{name: "no origin header", allowed: []string{"https://club.example"}, origin: "", want: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if c.origin != "" {
				req.Header.Set("Origin", c.origin)
			}
			if got := originChecker(c.allowed)(req); got != c.want {
				t.Errorf("originChecker(%v)(%q) = %v; want %v", c.allowed, c.origin, got, c.want)
			}
		})
	}
}

func TestServeWsReceivesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := brackets.NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(NewWebSocketHandler(hub, []string{"*"}).ServeWs))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount(brackets.TournamentRoom) != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never joined the tournament room")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Publish(brackets.EventMatchesDeleted, map[string]int64{"matches": 3})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg brackets.WebSocketMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg.Type != brackets.EventMatchesDeleted || msg.RoomID != brackets.TournamentRoom {
		t.Errorf("message = %+v; want %s in %s", msg, brackets.EventMatchesDeleted, brackets.TournamentRoom)
	}
}
