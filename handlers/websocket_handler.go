package handlers

import (
	"log"
	"net/http"

	"github.com/birdiehq/scorekeeper/live"
	"github.com/birdiehq/scorekeeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Scoreboard displays connect from club TVs and phones; origin
		// enforcement happens at the reverse proxy.
		return true
	},
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeLeaderboard subscribes a client to a division's standings room.
// Clients connect to /ws/leaderboard/{division}.
func (h *WebSocketHandler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	division := chi.URLParam(r, "division")
	if !models.Division(division).Valid() {
		http.Error(w, "division must be A or B", http.StatusBadRequest)
		return
	}
	h.serve(w, r, division)
}

// ServeCalcutta subscribes a client to calcutta scorecard updates.
func (h *WebSocketHandler) ServeCalcutta(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, live.RoomCalcutta)
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := live.NewClient(h.hub, conn, room)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
