package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Message is one event frame from the realtime channel.
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type Handler func(payload json.RawMessage)

// Conn is a shared connection to the realtime origin. Handlers are
// keyed by event name; subscribing again to the same event replaces
// the previous handler.
type Conn struct {
	ws *websocket.Conn

	mu       sync.Mutex
	handlers map[string]Handler

	// writeMu serializes writers; gorilla allows only one at a time.
	writeMu sync.Mutex

	done chan struct{}
}

// Dial connects to the realtime origin. token may be empty for
// unauthenticated channels.
func Dial(origin, token string) (*Conn, error) {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	ws, _, err := websocket.DefaultDialer.Dial(origin, header)
	if err != nil {
		return nil, fmt.Errorf("connect realtime channel: %w", err)
	}

	c := &Conn{
		ws:       ws,
		handlers: make(map[string]Handler),
		done:     make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

func (c *Conn) Subscribe(event string, handler Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = handler
}

func (c *Conn) Unsubscribe(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, event)
}

// Send emits an event frame to the server, e.g. to join a project
// channel.
func (c *Conn) Send(event string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(Message{Event: event, Payload: raw})
}

func (c *Conn) readLoop() {
	defer close(c.done)
	for {
		var msg Message
		if err := c.ws.ReadJSON(&msg); err != nil {
			return
		}

		c.mu.Lock()
		handler := c.handlers[msg.Event]
		c.mu.Unlock()

		if handler != nil {
			handler(msg.Payload)
		}
	}
}

// Done is closed when the read loop exits, whether by Close or by the
// peer going away.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) Close() error {
	err := c.ws.Close()
	<-c.done
	return err
}
