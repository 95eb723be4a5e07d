// Package ws pushes live submission-count updates to challenge pages. One
// hub serves all days; clients subscribe to a single date.
package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Update is the wire message sent to subscribers.
type Update struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Hub struct {
	clients    map[string]map[*Client]bool // date -> subscribers
	register   chan *Client
	unregister chan *Client
	updates    chan Update
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		updates:    make(chan Update, 16),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, subs := range h.clients {
				for client := range subs {
					client.Close()
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				if h.clients[client.date] == nil {
					h.clients[client.date] = make(map[*Client]bool)
				}
				h.clients[client.date][client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.clients[client.date]; ok && subs[client] {
				delete(subs, client)
				client.Close()
				if len(subs) == 0 {
					delete(h.clients, client.date)
				}
			}
			h.mu.Unlock()

		case update := <-h.updates:
			payload, err := json.Marshal(update)
			if err != nil {
				log.Printf("ERROR [ws.Hub] failed to marshal update: %v", err)
				continue
			}
			h.mu.Lock()
			for client := range h.clients[update.Date] {
				select {
				case client.send <- payload:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients[update.Date], client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifySubmission queues a count update for a date's subscribers. Never
// blocks the submitting request.
func (h *Hub) NotifySubmission(date string, count int) {
	select {
	case h.updates <- Update{Date: date, Count: count}:
	default:
		log.Printf("WARN [ws.Hub] update queue full, dropping update for %s", date)
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}
