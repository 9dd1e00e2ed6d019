package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// OrderBoard pushes order changes to every connected kitchen/front display.
type OrderBoard struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	log        *slog.Logger
}

func NewOrderBoard(log *slog.Logger) *OrderBoard {
	if log == nil {
		log = slog.Default()
	}
	return &OrderBoard{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled, then
// closes every connection.
func (b *OrderBoard) Run(ctx context.Context) error {
	defer close(b.done)
	for {
		select {
		case <-ctx.Done():
			b.mu.Lock()
			for conn := range b.clients {
				conn.Close()
				delete(b.clients, conn)
			}
			b.mu.Unlock()
			return nil

		case conn := <-b.register:
			b.mu.Lock()
			b.clients[conn] = true
			b.mu.Unlock()

		case conn := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case ev := <-b.broadcast:
			b.mu.Lock()
			for conn := range b.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					b.log.Warn("ws write error", slog.Any("error", err))
					conn.Close()
					delete(b.clients, conn)
				}
			}
			b.mu.Unlock()
		}
	}
}

// Publish queues an event. When the queue is full the event is dropped
// rather than holding up the request that produced it.
func (b *OrderBoard) Publish(ev services.OrderEvent) {
	select {
	case b.broadcast <- ev:
	default:
		b.log.Warn("order board queue full, dropping event",
			slog.String("type", ev.Type), slog.Uint64("orderId", uint64(ev.OrderID)))
	}
}

func (b *OrderBoard) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket: GET /ws/orders
func (b *OrderBoard) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		b.log.Warn("ws upgrade error", slog.Any("error", err))
		return
	}

	select {
	case b.register <- conn:
	case <-b.done:
		conn.Close()
		return
	}

	go b.listen(conn)
}

// listen drains client frames; boards only receive, so anything read is
// ignored and a read error means the client went away.
func (b *OrderBoard) listen(conn *websocket.Conn) {
	defer func() {
		select {
		case b.unregister <- conn:
		case <-b.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
