package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"taruvae/internal/store"
	"taruvae/pkg/logger"
)

// SnapshotFunc returns the current value of a collection so a fresh
// subscriber gets one immediate delivery before change events arrive.
type SnapshotFunc func(ctx context.Context) interface{}

// event is the wire frame pushed to subscribed clients: the collection name
// and its entire current value. There is no diffing.
type event struct {
	Collection string      `json:"collection"`
	Data       interface{} `json:"data"`
}

// Client represents a WebSocket connection client
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	mu   sync.Mutex
	subs map[string]func()
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan []byte, 16),
		subs: make(map[string]func()),
	}
}

// Manager bridges the store's change notifier to WebSocket clients.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex

	notifier  *store.Notifier
	snapshots map[string]SnapshotFunc
}

func NewManager(notifier *store.Notifier, snapshots map[string]SnapshotFunc) *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		notifier:   notifier,
		snapshots:  snapshots,
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("ws: client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					client.dropSubscriptions()
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("ws: client unregistered: %s", client.ID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Subscribe attaches a client to a collection: one immediate snapshot, then
// every change event until Unsubscribe or disconnect.
func (m *Manager) Subscribe(ctx context.Context, client *Client, collection string) bool {
	snapshot, ok := m.snapshots[collection]
	if !ok {
		return false
	}

	client.push(event{Collection: collection, Data: snapshot(ctx)})

	unsub := m.notifier.Subscribe(collection, func(data json.RawMessage) {
		client.push(event{Collection: collection, Data: data})
	})

	client.mu.Lock()
	if prev, exists := client.subs[collection]; exists {
		prev()
	}
	client.subs[collection] = unsub
	client.mu.Unlock()

	return true
}

func (m *Manager) Unsubscribe(client *Client, collection string) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if unsub, ok := client.subs[collection]; ok {
		unsub()
		delete(client.subs, collection)
	}
}

func (c *Client) push(ev event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Warn("ws: failed to serialize %s event: %v", ev.Collection, err)
		return
	}
	select {
	case c.Send <- msg:
	default:
		// Slow consumer; drop the frame rather than block the notifier.
	}
}

func (c *Client) dropSubscriptions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for collection, unsub := range c.subs {
		unsub()
		delete(c.subs, collection)
	}
}

// clientCommand is what clients send: subscribe/unsubscribe to a collection.
type clientCommand struct {
	Action     string `json:"action"`
	Collection string `json:"collection"`
}

// ReadPump reads subscription commands from the WebSocket connection
func (c *Client) ReadPump(ctx context.Context, m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: read error: %v", err)
			}
			break
		}

		var cmd clientCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			logger.Debug("ws: ignoring malformed command from %s", c.ID)
			continue
		}

		switch cmd.Action {
		case "subscribe":
			if !m.Subscribe(ctx, c, cmd.Collection) {
				logger.Debug("ws: %s asked for unknown collection %q", c.ID, cmd.Collection)
			}
		case "unsubscribe":
			m.Unsubscribe(c, cmd.Collection)
		}
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("ws: write error: %v", err)
			return
		}
	}
}
