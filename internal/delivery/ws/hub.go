package ws

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/stephyg0/christmas/internal/domain"
	"github.com/stephyg0/christmas/internal/usecase"
)

// ConnectionContext is the protocol state of one socket.
// A connection is Unattached until it has a player, and Closed once the hub drops it.
type ConnectionContext struct {
	SessionCode string
	PlayerID    string
	Alive       bool
}

// Attached reports whether the connection has joined a session
func (cc *ConnectionContext) Attached() bool {
	return cc.SessionCode != "" && cc.PlayerID != ""
}

type inboundMessage struct {
	client *Client
	data   []byte
}

// Hub owns the session registry, every session and the connection side-table.
// All of it is touched only from the Run goroutine, so handlers never interleave.
type Hub struct {
	registry          *usecase.SessionRegistry
	heartbeatInterval time.Duration
	maxMessageSize    int
	now               func() time.Time
	newID             func() string

	conns   map[*Client]*ConnectionContext
	players map[string]*Client // playerID -> connection

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundMessage
	pong       chan *Client
	done       chan struct{}
}

// NewHub creates a new Hub over the given registry
func NewHub(registry *usecase.SessionRegistry) *Hub {
	return &Hub{
		registry:          registry,
		heartbeatInterval: domain.HeartbeatInterval,
		maxMessageSize:    domain.MaxMessageSize,
		now:               time.Now,
		newID:             uuid.NewString,
		conns:             make(map[*Client]*ConnectionContext),
		players:           make(map[string]*Client),
		register:          make(chan *Client),
		unregister:        make(chan *Client),
		inbound:           make(chan inboundMessage, 256),
		pong:              make(chan *Client, 64),
		done:              make(chan struct{}),
	}
}

// SetHeartbeatInterval sets the liveness sweep period
func (h *Hub) SetHeartbeatInterval(d time.Duration) {
	if d > 0 {
		h.heartbeatInterval = d
	}
}

// SetMaxMessageSize sets the inbound frame limit
func (h *Hub) SetMaxMessageSize(n int) {
	if n > 0 {
		h.maxMessageSize = n
	}
}

// Run starts the hub's main event loop. It returns when ctx is cancelled,
// after terminating every open connection.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			h.addConnection(client)

		case client := <-h.unregister:
			h.disconnect(client)

		case msg := <-h.inbound:
			// A frame can arrive after its connection was dropped
			if _, ok := h.conns[msg.client]; ok {
				h.handleMessage(msg.client, msg.data)
			}

		case client := <-h.pong:
			h.markAlive(client)

		case <-ticker.C:
			h.sweep()

		case <-ctx.Done():
			close(h.done)
			for client := range h.conns {
				client.terminate()
				h.disconnect(client)
			}
			log.Println("ws: hub stopped")
			return
		}
	}
}

// addConnection records a new Unattached connection
func (h *Hub) addConnection(c *Client) {
	h.conns[c] = &ConnectionContext{Alive: true}
}

// disconnect runs the close path: detach the player, drop or refresh the
// session, and release the socket. Safe to call twice.
func (h *Hub) disconnect(c *Client) {
	cc, ok := h.conns[c]
	if !ok {
		return
	}
	delete(h.conns, c)
	close(c.send)

	if !cc.Attached() {
		return
	}
	delete(h.players, cc.PlayerID)
	h.detach(cc)
}

// detach removes the connection's player from its session
func (h *Hub) detach(cc *ConnectionContext) {
	session, ok := h.registry.Get(cc.SessionCode)
	if !ok {
		return
	}
	session.RemovePlayer(cc.PlayerID)
	if session.PlayerCount() == 0 {
		h.registry.Remove(session.Code)
		log.Printf("ws: session %s closed (last player left)", session.Code)
		return
	}
	h.broadcastState(session, "")
}

// markAlive records a heartbeat pong
func (h *Hub) markAlive(c *Client) {
	if cc, ok := h.conns[c]; ok {
		cc.Alive = true
	}
}

// lookup returns the side-table entry for a client
func (h *Hub) lookup(c *Client) (*ConnectionContext, bool) {
	cc, ok := h.conns[c]
	return cc, ok
}
