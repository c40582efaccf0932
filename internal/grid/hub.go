package grid

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/grindlemire/go-surface/internal/debug"
)

const defaultWriteWait = 5 * time.Second

// Hub is a Transport that broadcasts frames to every connected WebSocket
// client. It is an http.Handler; mount it wherever clients should connect.
// A client whose write fails is dropped. New clients immediately receive the
// most recent frame so they do not wait for the next commit.
type Hub struct {
	upgrader  websocket.Upgrader
	writeWait time.Duration

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	closed  bool
}

type client struct {
	conn *websocket.Conn
	// mu serializes writes; a websocket.Conn allows one concurrent writer.
	mu sync.Mutex
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithCheckOrigin overrides the upgrader's origin check.
func WithCheckOrigin(fn func(*http.Request) bool) HubOption {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = fn
	}
}

// WithWriteWait sets the per-client write deadline used when Send is called
// with a context that has no deadline.
func WithWriteWait(d time.Duration) HubOption {
	return func(h *Hub) {
		if d > 0 {
			h.writeWait = d
		}
	}
}

// NewHub creates an empty Hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		writeWait: defaultWriteWait,
		clients:   make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP upgrades the request and keeps the client registered until its
// connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		debug.Log("grid: upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	last := h.last
	// Hold the client's write lock across the handoff so a concurrent Send
	// cannot overtake the catch-up frame.
	c.mu.Lock()
	h.mu.Unlock()

	if last != nil {
		conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		err = conn.WriteMessage(websocket.TextMessage, last)
	}
	c.mu.Unlock()
	if err != nil {
		h.drop(c)
		return
	}
	debug.Log("grid: client connected from %s", r.RemoteAddr)

	// Clients never send anything meaningful; reading detects disconnects.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.drop(c)
			return
		}
	}
}

// Send broadcasts frame to every client and remembers it for late joiners.
func (h *Hub) Send(ctx context.Context, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.last = append([]byte(nil), frame...)
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(h.writeWait)
	}
	for _, c := range targets {
		c.mu.Lock()
		c.conn.SetWriteDeadline(deadline)
		err := c.conn.WriteMessage(websocket.TextMessage, frame)
		c.mu.Unlock()
		if err != nil {
			debug.Log("grid: dropping client: %v", err)
			h.drop(c)
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client. Further Sends fail with ErrClosed.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		c.mu.Lock()
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(time.Second))
		c.mu.Unlock()
		c.conn.Close()
	}
	return nil
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
	}
}
