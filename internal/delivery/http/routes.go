package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/stephyg0/christmas/internal/middleware"
)

// Routes wires every endpoint behind the security headers middleware
func (h *Handler) Routes(apiLimiter, wsLimiter *middleware.IPRateLimiter) http.Handler {
	mux := http.NewServeMux()

	// WebSocket route with rate limiting
	wsHandler := middleware.RateLimitFunc(wsLimiter, h.HandleWebSocket)

	// The client dials the page origin, so an upgrade on any unmatched path is a socket
	mux.HandleFunc("/", upgradeOr(wsHandler, h.HandleIndex))
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/ws", wsHandler)

	// API routes with rate limiting
	mux.HandleFunc("/api/session", middleware.RateLimitFunc(apiLimiter, h.HandleSessionLookup))

	return middleware.SecurityHeaders(mux)
}

// upgradeOr sends WebSocket handshakes to upgrade and everything else to next
func upgradeOr(upgrade, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			upgrade(w, r)
			return
		}
		next(w, r)
	}
}
