package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/benson/poolbuilder/internal/daily"
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/ws"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub, allowedOrigin string) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
			},
		},
	}
}

// Handle subscribes the caller to live submission counts for one date
// (default today).
func (h *WSHandler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.Date(time.Now())
	}
	if !domain.ValidDate(date) {
		writeError(w, http.StatusBadRequest, "malformed date, want YYYY-MM-DD")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [ws.Handle] upgrade failed: %v", err)
		return
	}

	ws.NewClient(h.hub, conn, date).Register()
}
