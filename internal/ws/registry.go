// Package ws serves the chat WebSocket: one duplex connection per browser
// tab carrying chat submissions in and streamed updates out, plus
// server-side pushes such as label changes.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"
)

// wsConn pairs a connection with a write lock. The library permits one
// concurrent reader and one concurrent writer; chat streams and broadcasts
// share the writer side, so writes are serialized per connection.
type wsConn struct {
	sock    *websocket.Conn
	writeMu sync.Mutex
}

func (c *wsConn) writeRaw(ctx context.Context, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.sock.Write(ctx, websocket.MessageText, data)
}

func (c *wsConn) writeJSON(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.writeRaw(ctx, data)
}

// Registry tracks active chat connections so server-side events, like a
// language switch, reach all of them.
type Registry struct {
	mu     sync.RWMutex
	nextID atomic.Int64
	active map[int64]*wsConn
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[int64]*wsConn)}
}

func (r *Registry) register(conn *wsConn) int64 {
	id := r.nextID.Add(1)
	r.mu.Lock()
	r.active[id] = conn
	r.mu.Unlock()
	slog.Debug("Chat connection registered", "conn_id", id)
	return id
}

func (r *Registry) unregister(id int64) {
	r.mu.Lock()
	delete(r.active, id)
	r.mu.Unlock()
	slog.Debug("Chat connection unregistered", "conn_id", id)
}

// Count reports how many chat connections are open.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}

// Broadcast sends v to every open connection and reports how many took
// the write. Failed connections are skipped; their own read loops notice
// the closed socket and unregister.
func (r *Registry) Broadcast(ctx context.Context, v any) int {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal broadcast frame", "error", err)
		return 0
	}

	r.mu.RLock()
	conns := make([]*wsConn, 0, len(r.active))
	for _, c := range r.active {
		conns = append(conns, c)
	}
	r.mu.RUnlock()

	sent := 0
	for _, c := range conns {
		if err := c.writeRaw(ctx, data); err != nil {
			slog.Debug("Broadcast write failed", "error", err)
			continue
		}
		sent++
	}
	return sent
}

// CloseAll terminates every connection. Used at shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	conns := r.active
	r.active = make(map[int64]*wsConn)
	r.mu.Unlock()

	for _, c := range conns {
		_ = c.sock.Close(websocket.StatusGoingAway, "server shutting down")
	}
	if len(conns) > 0 {
		slog.Info("Closed chat connections", "count", len(conns))
	}
}
