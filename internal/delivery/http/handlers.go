package http

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/gorilla/websocket"

	"github.com/stephyg0/christmas/internal/config"
	"github.com/stephyg0/christmas/internal/delivery/ws"
	"github.com/stephyg0/christmas/internal/usecase"
	"github.com/stephyg0/christmas/view/pages"
)

// AppName is shown on the fallback landing page
const AppName = "Frostfall Haven"

type Handler struct {
	hub      *ws.Hub
	registry *usecase.SessionRegistry
	cfg      *config.Config
	upgrader websocket.Upgrader
	static   http.Handler
}

func NewHandler(hub *ws.Hub, cfg *config.Config) *Handler {
	h := &Handler{
		hub:      hub,
		registry: hub.Registry(),
		cfg:      cfg,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return cfg.OriginAllowed(r.Header.Get("Origin"))
		},
	}
	if hasIndex(cfg.StaticDir) {
		h.static = http.FileServer(http.Dir(cfg.StaticDir))
	}
	return h
}

func hasIndex(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil && !info.IsDir()
}

// HandleIndex serves the client bundle, or a landing page when none is deployed
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if h.static != nil {
		h.static.ServeHTTP(w, r)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(pages.Landing(AppName, h.registry.Count())).ServeHTTP(w, r)
}

// HandleHealth reports liveness of the process
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleSessionLookup lets the lobby check a join code before connecting
func (h *Handler) HandleSessionLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := usecase.NormalizeCode(r.URL.Query().Get("code"))
	if !usecase.IsValidSessionCode(code) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid session code.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"code":   code,
		"exists": h.registry.Exists(code),
	})
}

// HandleWebSocket upgrades HTTP to WebSocket. The connection starts Unattached;
// the client creates or joins a session over the socket.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		log.Printf("http: websocket upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: failed to write response: %v", err)
	}
}
