package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FeedHub pushes newly committed concerns to connected operator panels.
type FeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Concern
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Concern, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *FeedHub) Run() {
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

		case concern := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(concern); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyConcernCreated implements services.ConcernNotifier. Best-effort:
// a full buffer drops the event rather than stalling the request.
func (h *FeedHub) NotifyConcernCreated(concern *entity.Concern) {
	select {
	case h.broadcast <- concern:
	default:
		log.Println("ws feed buffer full, dropping concern event")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/feed (operator/official only, enforced by middleware)
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain keeps the read side alive so peer close is noticed.
func (h *FeedHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
