package ws

import "log"

// sweep is one liveness tick. Connections that have not answered the previous
// ping are terminated through the normal close path; the rest are marked
// not-alive and pinged again.
func (h *Hub) sweep() {
	for client, cc := range h.conns {
		if !cc.Alive {
			log.Printf("ws: connection %s missed heartbeat, terminating", client.ID)
			client.terminate()
			h.disconnect(client)
			continue
		}
		cc.Alive = false
		client.requestPing()
	}
}
