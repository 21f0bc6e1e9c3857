// Package netplay streams live run state to browser spectators over
// WebSocket. The hub is write-only: spectators watch, they never feed input
// back into the simulation, so determinism is untouched.
package netplay

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lunarbyte/shellstorm/internal/core"
	"github.com/lunarbyte/shellstorm/internal/game"
)

// Frame is one spectator update: the HUD summary plus the full simulation
// snapshot for rich clients.
type Frame struct {
	Seq      uint64         `json:"seq"`
	State    core.GameState `json:"state"`
	Snapshot game.Snapshot  `json:"snapshot"`
}

// Hub fans simulation frames out to connected spectators.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]*subscriber
	nextID      atomic.Uint64
	seq         atomic.Uint64
	lastHash    uint64

	upgrader websocket.Upgrader
	logger   *log.Logger
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewHub creates an empty spectator hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uint64]*subscriber),
		upgrader: websocket.Upgrader{
			// Spectator feed is read-only; accept any origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP upgrades a spectator connection and parks it until it drops.
// Incoming messages are drained and discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("spectator upgrade failed", "err", err)
		return
	}

	id := h.nextID.Add(1)
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[id] = sub
	count := len(h.subscribers)
	h.mu.Unlock()
	h.logger.Info("spectator connected", "id", id, "total", count)

	go func() {
		defer h.drop(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) drop(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	if ok {
		sub.conn.Close()
		h.logger.Info("spectator disconnected", "id", id, "total", count)
	}
}

// Spectators returns the number of connected spectators.
func (h *Hub) Spectators() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Broadcast sends the current frame to every spectator. Frames whose
// snapshot hash matches the previous broadcast are skipped.
func (h *Hub) Broadcast(state core.GameState, snap game.Snapshot) {
	hash := snap.Hash()

	h.mu.Lock()
	if hash == h.lastHash || len(h.subscribers) == 0 {
		h.lastHash = hash
		h.mu.Unlock()
		return
	}
	h.lastHash = hash
	subs := make([]*subscriber, 0, len(h.subscribers))
	ids := make([]uint64, 0, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs = append(subs, sub)
		ids = append(ids, id)
	}
	h.mu.Unlock()

	frame := Frame{
		Seq:      h.seq.Add(1),
		State:    state,
		Snapshot: snap,
	}
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("frame encode failed", "err", err)
		return
	}

	for i, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			h.drop(ids[i])
		}
	}
}

// Close drops every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subscribers
	h.subscribers = make(map[uint64]*subscriber)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.conn.Close()
	}
}
