/*
hub.go - WebSocket hub for live table updates

PURPOSE:
  Pushes an event to every connected table view when the configuration
  mapping changes, so other open views can refresh without polling.

EVENTS:
  config_committed: one expedition's config was replaced (no-op edits are
                    not published)
  scenario_loaded:  the whole mapping was replaced

ARCHITECTURE:
  - Hub: owns the client set; a single goroutine (Run) mutates it
  - client: one browser connection with a buffered send channel
  - ServeWs: upgrades GET /api/ws and starts the read/write pumps

  Clients never send anything meaningful; the read pump only exists to
  notice disconnects. A client whose buffer is full is dropped.
*/
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Event is the JSON envelope of every pushed message.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

const (
	EventConfigCommitted = "config_committed"
	EventScenarioLoaded  = "scenario_loaded"
)

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts events to them.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}
	open       atomic.Int32
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing every
// client's send channel.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			close(c.send)
			delete(h.clients, c)
		}
		h.open.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.clients[c] = true
			h.open.Store(int32(len(h.clients)))
			log.Printf("ws: client connected (%d open)", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.open.Store(int32(len(h.clients)))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.open.Store(int32(len(h.clients)))
		}
	}
}

// Clients returns the number of registered connections.
func (h *Hub) Clients() int { return int(h.open.Load()) }

// Publish queues an event for every client. It never blocks: when the
// broadcast queue is full the event is dropped and logged. A nil hub is a
// no-op.
func (h *Hub) Publish(eventType string, payload any) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("ws: encode %s: %v", eventType, err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("ws: broadcast queue full, dropping %s", eventType)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and registers the connection.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws: read: %v", err)
			}
			return
		}
	}
}

// writePump exits when the hub closes c.send.
func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
