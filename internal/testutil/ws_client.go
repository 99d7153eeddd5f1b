package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test WebSocket client
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan *websocket.Message
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient connects to the change feed and waits for the greeting, so the
// client is registered once this returns.
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := *gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan *websocket.Message, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	client.ExpectMessage(websocket.MessageTypeHello, 5*time.Second)
	return client
}

// readPump reads messages from the WebSocket connection
func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			case c.errors <- err:
			default:
			}
			return
		}

		var msg websocket.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			select {
			case c.errors <- err:
			default:
			}
			continue
		}

		select {
		case c.messages <- &msg:
		case <-c.done:
			return
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// ExpectMessage waits for the next message and fails unless it has msgType.
func (c *WSClient) ExpectMessage(msgType domain.EventType, timeout time.Duration) *websocket.Message {
	c.t.Helper()

	select {
	case msg, ok := <-c.messages:
		if !ok {
			c.t.Fatalf("connection closed while waiting for %s", msgType)
		}
		if msg.Type != msgType {
			c.t.Fatalf("expected message type %s, got %s", msgType, msg.Type)
		}
		return msg
	case err := <-c.errors:
		c.t.Fatalf("websocket error while waiting for %s: %v", msgType, err)
	case <-time.After(timeout):
		c.t.Fatalf("timeout waiting for message type %s", msgType)
	}
	return nil
}

// ExpectNoMessage fails if any message arrives within timeout.
func (c *WSClient) ExpectNoMessage(timeout time.Duration) {
	c.t.Helper()

	select {
	case msg, ok := <-c.messages:
		if ok {
			c.t.Fatalf("expected no message, got %s", msg.Type)
		}
	case <-time.After(timeout):
	}
}
