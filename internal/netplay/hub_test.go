package netplay

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lunarbyte/shellstorm/internal/config"
	"github.com/lunarbyte/shellstorm/internal/core"
	"github.com/lunarbyte/shellstorm/internal/game"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(hub)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial failed: %v", err)
	}
	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func waitForSpectators(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Spectators() != want {
		if time.Now().After(deadline) {
			t.Fatalf("spectators = %d, want %d", hub.Spectators(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastReachesSpectator(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForSpectators(t, hub, 1)

	g := game.New(config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Start()
	hub.Broadcast(g.State(), g.Snapshot())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if frame.State.Status != core.StatusPlaying {
		t.Errorf("frame status = %s, want playing", frame.State.Status)
	}
	if frame.Snapshot.CharacterID == "" {
		t.Error("frame should carry the full snapshot")
	}
}

func TestBroadcastSkipsUnchangedFrames(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForSpectators(t, hub, 1)

	g := game.New(config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Start()

	snap := g.Snapshot()
	hub.Broadcast(g.State(), snap)
	hub.Broadcast(g.State(), snap) // Identical, must be skipped

	conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("first frame should arrive: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("duplicate frame should not be broadcast")
	}
}

func TestDroppedSpectatorIsRemoved(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForSpectators(t, hub, 1)

	conn.Close()
	waitForSpectators(t, hub, 0)
}
