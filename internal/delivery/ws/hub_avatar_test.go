package ws

import (
	"testing"

	"github.com/stephyg0/christmas/internal/domain"
)

func TestUpdateAvatar_ExcludesSender(t *testing.T) {
	hub := newTestHub()
	clients, ids := setupParty(t, hub, 2)
	a, b := clients[0], clients[1]

	sendMsg(t, hub, a, "update_avatar", map[string]any{
		"transform": map[string]any{
			"position": map[string]any{"x": 4, "y": 0, "z": -2},
			"rotation": map[string]any{"x": 0, "y": 3.1, "z": 0},
		},
	})

	expectNothing(t, a)
	s := decodeState(t, onlyFrame(t, b, domain.MessageTypeSessionState))

	var moved *domain.PlayerSnapshot
	for i := range s.Players {
		if s.Players[i].ID == ids[0] {
			moved = &s.Players[i]
		}
	}
	if moved == nil {
		t.Fatal("Sender missing from snapshot")
	}
	want := domain.Transform{
		Position: domain.Vec3{X: 4, Z: -2},
		Rotation: domain.Vec3{Y: 3.1},
	}
	if moved.Transform != want {
		t.Errorf("Expected transform %+v, got %+v", want, moved.Transform)
	}
}

func TestUpdateAvatar_MergesAppearance(t *testing.T) {
	hub := newTestHub()
	clients, ids := setupParty(t, hub, 2)
	a, b := clients[0], clients[1]

	_, player, ok := hub.attachedSession(a)
	if !ok {
		t.Fatal("Expected attached session")
	}
	startActive := player.LastActive

	sendMsg(t, hub, a, "update_avatar", map[string]any{
		"avatar": map[string]any{
			"colors":    map[string]any{"accent": "#be4f2f"},
			"hair":      "braids",
			"character": "fox",
		},
	})

	s := decodeState(t, onlyFrame(t, b, domain.MessageTypeSessionState))
	got := s.Players[0]
	if got.ID != ids[0] {
		t.Fatalf("Expected host first, got %s", got.ID)
	}
	want := domain.Avatar{
		Colors:    domain.AvatarColors{Outfit: domain.DefaultOutfitColor, Accent: "#be4f2f"},
		Outfit:    domain.DefaultOutfit,
		Hair:      "braids",
		Character: "fox",
	}
	if got.Avatar != want {
		t.Errorf("Expected %+v, got %+v", want, got.Avatar)
	}
	if got.Transform != (domain.Transform{}) {
		t.Error("Transform must be untouched when not provided")
	}
	if !player.LastActive.After(startActive) {
		t.Error("Expected lastActive to advance")
	}
	if got.LastActive != player.LastActive.UnixMilli() {
		t.Errorf("Expected lastActive %d on the wire, got %d", player.LastActive.UnixMilli(), got.LastActive)
	}
}

func TestUpdateAvatar_SoloPlayerGetsNothing(t *testing.T) {
	hub := newTestHub()
	clients, _ := setupParty(t, hub, 1)

	sendMsg(t, hub, clients[0], "update_avatar", map[string]any{"avatar": map[string]any{"outfit": "cloak"}})

	expectNothing(t, clients[0])
}
