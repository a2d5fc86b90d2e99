package ws

import (
	"net/http"
	"sync"

	"github.com/Hsharma41126/new-restorant/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// KitchenHub fans ticket events out to connected kitchen displays. One feed,
// every display sees every ticket.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.TicketEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.TicketEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish implements services.Broadcaster. Dropping beats blocking the
// request path when the hub is saturated.
func (h *KitchenHub) Publish(evt services.TicketEvent) {
	select {
	case h.broadcast <- evt:
	default:
		log.WithField("type", evt.Type).Warn("kitchen feed full, dropping event")
	}
}

func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					log.WithError(err).Warn("ws write error")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("ws upgrade error")
		return
	}
	h.register <- conn

	// Displays only listen; the read loop just detects disconnects.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
