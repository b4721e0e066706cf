package web

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
	"github.com/google/uuid"
)

// clientBuffer is the number of messages queued per client before it starts missing them.
const clientBuffer = 32

// Hub fans camera events out to websocket clients. New clients first receive the most
// recent message so an overlay opened mid-visit shows the current focus.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	last    []byte
}

// Client is one subscriber of the hub.
type Client struct {
	ID   string
	send chan []byte
}

// Messages returns the client's queue. It is closed on unsubscribe.
func (c *Client) Messages() <-chan []byte {
	return c.send
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Subscribe registers a client and returns it with its cleanup function.
func (h *Hub) Subscribe() (*Client, func()) {
	c := &Client{ID: uuid.NewString(), send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()

	var once sync.Once
	return c, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			close(c.send)
		})
	}
}

// Len returns the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends data to every client. Slow clients miss messages rather than
// blocking the sender.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Debug("ws client lagging, message skipped", "client", c.ID)
		}
	}
}

// Publish encodes a camera event and broadcasts it.
func (h *Hub) Publish(ev camera.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	h.Broadcast(data)
	return nil
}

// Forward publishes events until ctx is done or the channel closes.
func (h *Hub) Forward(ctx context.Context, events <-chan camera.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := h.Publish(ev); err != nil {
				log.Warn("event encode failed", "type", ev.Type, "error", err)
				continue
			}
			log.Debug("event forwarded", "type", ev.Type, "at", ev.Time.Format(time.RFC3339))
		}
	}
}
