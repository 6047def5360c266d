package ws

import (
	"encoding/json"
	"log"

	"github.com/stephyg0/christmas/internal/domain"
)

// encode marshals an outbound frame, logging failures
func encode(msg domain.OutboundMessage) ([]byte, bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("ws: failed to marshal %s: %v", msg.Type, err)
		return nil, false
	}
	return data, true
}

// sendTo queues a frame for one connection
func (h *Hub) sendTo(c *Client, msgType domain.MessageType, payload any) {
	if data, ok := encode(domain.OutboundMessage{Type: msgType, Data: payload}); ok {
		c.Send(data)
	}
}

// sendError reports a protocol error to the offending connection only
func (h *Hub) sendError(c *Client, err error) {
	if data, ok := encode(domain.OutboundMessage{Type: domain.MessageTypeError, Message: err.Error()}); ok {
		c.Send(data)
	}
}

// broadcastState sends the session snapshot to every attached player except
// exceptPlayerID (empty means everyone). Sends are fire-and-forget.
func (h *Hub) broadcastState(session *domain.Session, exceptPlayerID string) {
	data, ok := encode(domain.OutboundMessage{
		Type: domain.MessageTypeSessionState,
		Data: session.Snapshot(),
	})
	if !ok {
		return
	}

	for _, playerID := range session.PlayerIDs() {
		if playerID == exceptPlayerID {
			continue
		}
		if client, ok := h.players[playerID]; ok {
			client.Send(data)
		}
	}
}
