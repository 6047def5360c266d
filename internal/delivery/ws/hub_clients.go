package ws

import "github.com/stephyg0/christmas/internal/usecase"

// Register adds a new connection to the hub
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.terminate()
		close(c.send)
	}
}

// Unregister triggers the close path for a connection
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Inbound queues a raw frame from a connection for processing
func (h *Hub) Inbound(c *Client, data []byte) {
	select {
	case h.inbound <- inboundMessage{client: c, data: data}:
	case <-h.done:
	}
}

// Pong records a heartbeat reply from a connection
func (h *Hub) Pong(c *Client) {
	select {
	case h.pong <- c:
	case <-h.done:
	}
}

// Registry returns the session registry the hub mutates
func (h *Hub) Registry() *usecase.SessionRegistry {
	return h.registry
}
