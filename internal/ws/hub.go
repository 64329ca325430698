package ws

import (
	"log"
	"sync"
)

// Hub fans broadcast events out to every connected websocket client. Clients
// that cannot keep up are dropped rather than allowed to stall the loop.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

// Run owns the client set. It is the only goroutine that mutates it, so the
// pumps never race on membership.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.add(c)
		case c := <-h.unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

func (h *Hub) add(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	active := len(h.clients)
	h.mu.Unlock()
	h.logf("ws: client joined, %d active", active)
}

func (h *Hub) remove(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	active := len(h.clients)
	h.mu.Unlock()
	h.logf("ws: client left, %d active", active)
}

func (h *Hub) fanOut(msg []byte) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- msg:
		default:
			// Slow consumer, cut it loose.
			h.unregister <- c
		}
	}
	h.logf("ws: event sent to %d clients", len(targets))
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

func (h *Hub) Register(c *Client) {
	if h == nil {
		return
	}
	h.register <- c
}

func (h *Hub) Unregister(c *Client) {
	if h == nil {
		return
	}
	h.unregister <- c
}

// Broadcast queues an event without blocking the caller. When the buffer is
// full the event is dropped; ingest and weight updates are advisory.
func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logf("ws: broadcast buffer full, event dropped")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
