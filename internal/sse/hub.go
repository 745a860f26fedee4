package sse

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"feed_demo/internal/model"
)

type Client struct {
	Topic string
	Ch    chan model.Event
}

// Hub fans events out to the clients subscribed to their topic.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan model.Event
	done       chan struct{}
	stopOnce   sync.Once
	topics     map[string]map[*Client]struct{}
	mu         sync.RWMutex
	seq        atomic.Int64
	dropped    atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan model.Event, 64),
		done:       make(chan struct{}),
		topics:     make(map[string]map[*Client]struct{}),
	}
}

// Register subscribes client. It returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister is a no-op once the hub has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Seq is the sequence number of the most recently published event.
func (h *Hub) Seq() int64 {
	return h.seq.Load()
}

// Publish stamps the event with the next sequence number and queues it. The
// event is dropped when the broadcast queue is full.
func (h *Hub) Publish(topic, eventType string, data any) model.Event {
	event := model.Event{
		Seq:       h.seq.Add(1),
		Topic:     topic,
		Type:      eventType,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	select {
	case h.broadcast <- event:
	default:
		h.dropped.Add(1)
	}
	return event
}

// Dropped counts events skipped because a queue or client buffer was full.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case event := <-h.broadcast:
			h.broadcastToTopic(event)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[client.Topic] == nil {
		h.topics[client.Topic] = make(map[*Client]struct{})
	}
	h.topics[client.Topic][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.topics[client.Topic]
	if clients == nil {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.topics, client.Topic)
	}
}

func (h *Hub) broadcastToTopic(event model.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.topics[event.Topic] {
		select {
		case client.Ch <- event:
		default:
			h.dropped.Add(1)
		}
	}
}
