package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func startBoard(t *testing.T) (*OrderBoard, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	board := NewOrderBoard(nil)
	done := make(chan struct{})
	go func() {
		board.Run(ctx)
		close(done)
	}()

	r := gin.New()
	r.GET("/ws/orders", board.HandleWebSocket)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		cancel()
		<-done
		srv.Close()
	})
	return board, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
}

func waitForClients(t *testing.T, b *OrderBoard, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for b.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, b.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBoardBroadcastsToAllClients(t *testing.T) {
	board, url := startBoard(t)

	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.Close()
		conns = append(conns, conn)
	}
	waitForClients(t, board, 2)

	board.Publish(services.OrderEvent{Type: services.EventOrderStatus, OrderID: 42, Status: "出餐", At: time.Now()})

	for _, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev services.OrderEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		if ev.Type != services.EventOrderStatus || ev.OrderID != 42 || ev.Status != "出餐" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	}
}

func TestBoardDropsClosedClients(t *testing.T) {
	board, url := startBoard(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, board, 1)

	conn.Close()
	waitForClients(t, board, 0)
}

func TestPublishDoesNotBlockWithoutRunner(t *testing.T) {
	board := NewOrderBoard(nil)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			board.Publish(services.OrderEvent{Type: services.EventOrderCreated, OrderID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked with a full queue")
	}
}
