// Package live pushes scoring updates to connected scoreboard clients over
// websockets. Clients subscribe to a room per division ("A", "B") or to the
// calcutta room; every round submission and scheduler tick broadcasts there.
package live

import (
	"encoding/json"
	"log"
	"sync"
)

const (
	// Message types sent to scoreboard clients.
	MessageLeaderboardUpdated = "LEADERBOARD_UPDATED"
	MessageRoundRecorded      = "ROUND_RECORDED"

	// RoomCalcutta receives calcutta scorecard refreshes.
	RoomCalcutta = "calcutta"
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Room    string      `json:"room,omitempty"`
}

type Hub struct {
	Register   chan *Client
	Unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.Room]; ok {
				if _, okClient := clients[client]; okClient {
					client.mu.Lock()
					if !client.closed {
						close(client.send)
						client.closed = true
					}
					client.mu.Unlock()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.Room)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToRoom sends a message to every client subscribed to the room.
// A nil hub is a no-op, so services can run without live updates in tests.
func (h *Hub) BroadcastToRoom(room string, message Message) {
	if h == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[room]
	if !ok {
		return
	}

	message.Room = room
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Printf("live: failed to marshal message for room %s: %v", room, err)
		return
	}

	for client := range clients {
		client.mu.Lock()
		if client.closed {
			client.mu.Unlock()
			continue
		}
		select {
		case client.send <- messageBytes:
		default:
			// Slow client; drop this update rather than block the broadcast.
		}
		client.mu.Unlock()
	}
}
