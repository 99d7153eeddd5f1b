package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
)

const broadcastBuffer = 64

// Hub fans content-change events out to every connected client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	logger     logging.Logger
	mu         sync.RWMutex
}

func NewHub(logger logging.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastBuffer),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger.With("component", "hub"),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow reader; drop it rather than stall everyone else.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop shuts the hub down and closes every client. It blocks until Run exits.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister safely unregisters a client, handling the case where the hub may be stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues an event for every client. It never blocks; events are
// dropped when the hub is stopped or its queue is full.
func (h *Hub) Publish(event domain.EventType, payload any) {
	msg, err := NewMessage(event, payload)
	if err != nil {
		h.logger.Error(context.Background(), "failed to build event", "type", event, "error", err)
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(context.Background(), "failed to marshal event", "type", event, "error", err)
		return
	}

	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()
	if stopped {
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn(context.Background(), "event dropped, broadcast queue full", "type", event)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
