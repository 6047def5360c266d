package ws

import (
	"log"

	"github.com/stephyg0/christmas/internal/domain"
	"github.com/stephyg0/christmas/internal/usecase"
)

// handleCreateSession starts a new session with the sender as sole occupant
func (h *Hub) handleCreateSession(c *Client, req domain.CreateSessionRequest) error {
	cc, ok := h.lookup(c)
	if !ok {
		return nil
	}
	if cc.Attached() {
		return domain.ErrAlreadyAttached
	}

	session, err := h.registry.Create()
	if err != nil {
		log.Printf("ws: create session failed: %v", err)
		return domain.ErrCreateFailed
	}

	player := domain.NewPlayer(h.newID(), req.DisplayName, domain.DefaultCreatorName, req.Avatar, req.Transform, h.now())
	h.attach(c, cc, session, player)
	log.Printf("ws: session %s created", session.Code)

	h.sendTo(c, domain.MessageTypeSessionCreated, domain.SessionAttachedPayload{
		PlayerID: player.ID,
		Code:     session.Code,
		State:    session.Snapshot(),
	})
	return nil
}

// handleJoinSession attaches the sender to an existing session and tells the others
func (h *Hub) handleJoinSession(c *Client, req domain.JoinSessionRequest) error {
	cc, ok := h.lookup(c)
	if !ok {
		return nil
	}
	if cc.Attached() {
		return domain.ErrAlreadyAttached
	}

	code := usecase.NormalizeCode(req.Code)
	session, ok := h.registry.Get(code)
	if !ok {
		return domain.ErrSessionNotFound
	}

	player := domain.NewPlayer(h.newID(), req.DisplayName, domain.DefaultJoinerName, req.Avatar, req.Transform, h.now())
	h.attach(c, cc, session, player)

	h.sendTo(c, domain.MessageTypeSessionJoined, domain.SessionAttachedPayload{
		PlayerID: player.ID,
		Code:     session.Code,
		State:    session.Snapshot(),
	})
	h.broadcastState(session, player.ID)
	return nil
}

// handleRequestState answers the requester with the current snapshot
func (h *Hub) handleRequestState(c *Client) {
	session, _, ok := h.attachedSession(c)
	if !ok {
		return
	}
	h.sendTo(c, domain.MessageTypeSessionState, session.Snapshot())
}

// attach moves a connection from Unattached to Attached
func (h *Hub) attach(c *Client, cc *ConnectionContext, session *domain.Session, player *domain.Player) {
	session.AddPlayer(player)
	cc.SessionCode = session.Code
	cc.PlayerID = player.ID
	h.players[player.ID] = c
}
