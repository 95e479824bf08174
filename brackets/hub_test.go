package brackets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, room string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount(room) != want {
		if time.Now().After(deadline) {
			t.Fatalf("room %s has %d clients; want %d", room, hub.ClientCount(room), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcastToRoomBuffers(t *testing.T) {
	hub := startHub(t)

	inRoom := &Client{Hub: hub, Send: make(chan []byte, 1), Room: TournamentRoom}
	elsewhere := &Client{Hub: hub, Send: make(chan []byte, 1), Room: "other"}
	if !hub.Join(inRoom) || !hub.Join(elsewhere) {
		t.Fatal("Join failed on a running hub")
	}
	waitForClients(t, hub, TournamentRoom, 1)
	waitForClients(t, hub, "other", 1)

	hub.Publish(EventMatchReported, map[string]int{"winner_id": 1, "loser_id": 2})
	// second message does not fit in the buffer and is dropped
	hub.Publish(EventMatchReported, map[string]int{"winner_id": 3, "loser_id": 4})

	select {
	case raw := <-inRoom.Send:
		var msg WebSocketMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != EventMatchReported || msg.RoomID != TournamentRoom {
			t.Errorf("message = %+v; want type %s in room %s", msg, EventMatchReported, TournamentRoom)
		}
	default:
		t.Fatal("client in room received nothing")
	}
	if len(inRoom.Send) != 0 {
		t.Errorf("client buffer holds %d extra messages; want 0", len(inRoom.Send))
	}
	if len(elsewhere.Send) != 0 {
		t.Error("client in another room received a tournament event")
	}

	hub.Unregister <- inRoom
	waitForClients(t, hub, TournamentRoom, 0)
	if _, ok := <-inRoom.Send; ok {
		t.Error("send channel still open after unregister")
	}
}

func TestHubJoinAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	if hub.Join(&Client{Hub: hub, Send: make(chan []byte, 1), Room: TournamentRoom}) {
		t.Error("Join succeeded after the hub stopped")
	}
}

func TestHubDeliversOverWebSocket(t *testing.T) {
	hub := startHub(t)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 8), Room: TournamentRoom}
		if !hub.Join(client) {
			conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, TournamentRoom, 1)

	hub.Publish(EventPlayerRegistered, map[string]interface{}{"id": 1, "name": "A"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg WebSocketMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg.Type != EventPlayerRegistered {
		t.Errorf("Type = %q; want %q", msg.Type, EventPlayerRegistered)
	}

	conn.Close()
	waitForClients(t, hub, TournamentRoom, 0)
}
