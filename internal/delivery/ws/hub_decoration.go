package ws

import "github.com/stephyg0/christmas/internal/domain"

// handleDecoration applies a place/update/remove and broadcasts to the whole
// session, sender included. Updates and removals of unknown ids still broadcast.
func (h *Hub) handleDecoration(c *Client, req domain.DecorationRequest) {
	session, player, ok := h.attachedSession(c)
	if !ok {
		return
	}

	switch req.Kind {
	case domain.MessageTypePlaceDecoration:
		session.PlaceDecoration(domain.NewDecoration(player.ID, req, h.newID))
	case domain.MessageTypeUpdateDecoration:
		session.UpdateDecoration(req.ID, req)
	case domain.MessageTypeRemoveDecoration:
		session.RemoveDecoration(req.ID)
	}

	h.broadcastState(session, "")
}
