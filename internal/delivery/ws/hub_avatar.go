package ws

import "github.com/stephyg0/christmas/internal/domain"

// handleUpdateAvatar applies movement/appearance and echoes to everyone but the sender
func (h *Hub) handleUpdateAvatar(c *Client, req domain.UpdateAvatarRequest) {
	session, player, ok := h.attachedSession(c)
	if !ok {
		return
	}
	player.ApplyUpdate(req, h.now())
	h.broadcastState(session, player.ID)
}
