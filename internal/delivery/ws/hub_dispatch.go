package ws

import (
	"errors"
	"log"

	"github.com/stephyg0/christmas/internal/domain"
)

// handleMessage decodes one inbound frame and runs its handler to completion
func (h *Hub) handleMessage(c *Client, raw []byte) {
	req, err := decodeRequest(raw)
	if err != nil {
		h.replyError(c, err)
		return
	}

	switch r := req.(type) {
	case domain.CreateSessionRequest:
		err = h.handleCreateSession(c, r)
	case domain.JoinSessionRequest:
		err = h.handleJoinSession(c, r)
	case domain.UpdateAvatarRequest:
		h.handleUpdateAvatar(c, r)
	case domain.DecorationRequest:
		h.handleDecoration(c, r)
	case domain.RequestStateRequest:
		h.handleRequestState(c)
	}

	if err != nil {
		h.replyError(c, err)
	}
}

// replyError sends protocol errors to the client and logs anything else
func (h *Hub) replyError(c *Client, err error) {
	var perr domain.ProtocolError
	if errors.As(err, &perr) {
		h.sendError(c, perr)
		return
	}
	log.Printf("ws: connection %s: %v", c.ID, err)
}

// attachedSession resolves the session and player of an Attached connection.
// ok is false when the connection is Unattached or its session is gone.
func (h *Hub) attachedSession(c *Client) (*domain.Session, *domain.Player, bool) {
	cc, ok := h.lookup(c)
	if !ok || !cc.Attached() {
		return nil, nil, false
	}
	session, ok := h.registry.Get(cc.SessionCode)
	if !ok {
		return nil, nil, false
	}
	player, ok := session.Player(cc.PlayerID)
	if !ok {
		return nil, nil, false
	}
	return session, player, true
}
