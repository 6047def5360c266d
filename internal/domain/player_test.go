package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestNormalizeAvatar(t *testing.T) {
	tests := []struct {
		name  string
		patch *AvatarPatch
		want  Avatar
	}{
		{
			name:  "Nil patch",
			patch: nil,
			want: Avatar{
				Colors: AvatarColors{Outfit: DefaultOutfitColor, Accent: DefaultAccentColor},
				Outfit: DefaultOutfit,
				Hair:   DefaultHair,
			},
		},
		{
			name: "Empty strings fall back",
			patch: &AvatarPatch{
				Colors: &AvatarColorsPatch{Outfit: strPtr("")},
				Hair:   strPtr(""),
			},
			want: Avatar{
				Colors: AvatarColors{Outfit: DefaultOutfitColor, Accent: DefaultAccentColor},
				Outfit: DefaultOutfit,
				Hair:   DefaultHair,
			},
		},
		{
			name: "Provided fields kept",
			patch: &AvatarPatch{
				Colors:    &AvatarColorsPatch{Accent: strPtr("#111111")},
				Outfit:    strPtr("cloak"),
				Character: strPtr("penguin"),
			},
			want: Avatar{
				Colors:    AvatarColors{Outfit: DefaultOutfitColor, Accent: "#111111"},
				Outfit:    "cloak",
				Hair:      DefaultHair,
				Character: "penguin",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAvatar(tt.patch); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestAvatarMerge(t *testing.T) {
	base := NormalizeAvatar(nil)

	merged := base.Merge(&AvatarPatch{
		Colors: &AvatarColorsPatch{Outfit: strPtr("#abcdef")},
	})
	if merged.Colors.Outfit != "#abcdef" || merged.Colors.Accent != DefaultAccentColor {
		t.Errorf("Colors must merge per field, got %+v", merged.Colors)
	}
	if merged.Outfit != base.Outfit || merged.Hair != base.Hair {
		t.Error("Untouched fields changed")
	}

	if base.Merge(nil) != base {
		t.Error("Nil patch must be a no-op")
	}
}

func TestNewPlayer(t *testing.T) {
	now := time.UnixMilli(1000)

	p := NewPlayer("p1", "", DefaultJoinerName, nil, nil, now)
	if p.DisplayName != DefaultJoinerName {
		t.Errorf("Expected fallback name, got %q", p.DisplayName)
	}
	if p.Transform != (Transform{}) {
		t.Errorf("Expected origin, got %+v", p.Transform)
	}
	if !p.LastActive.Equal(now) {
		t.Error("Expected lastActive stamped")
	}

	tr := &Transform{Position: Vec3{X: 1, Y: 2, Z: 3}}
	p = NewPlayer("p2", "Frosty", DefaultCreatorName, nil, tr, now)
	if p.DisplayName != "Frosty" || p.Transform != *tr {
		t.Errorf("Unexpected player %+v", p)
	}
}

func TestPlayerApplyUpdate(t *testing.T) {
	p := NewPlayer("p1", "Frosty", DefaultCreatorName, nil, nil, time.UnixMilli(1000))

	p.ApplyUpdate(UpdateAvatarRequest{Avatar: &AvatarPatch{Hair: strPtr("bun")}}, time.UnixMilli(2000))
	if p.Avatar.Hair != "bun" || p.Transform != (Transform{}) {
		t.Errorf("Unexpected state %+v", p)
	}
	if p.LastActive.UnixMilli() != 2000 {
		t.Errorf("Expected lastActive 2000, got %d", p.LastActive.UnixMilli())
	}

	p.ApplyUpdate(UpdateAvatarRequest{Transform: &Transform{Rotation: Vec3{Y: 1}}}, time.UnixMilli(3000))
	if p.Transform.Rotation.Y != 1 || p.Avatar.Hair != "bun" {
		t.Errorf("Unexpected state %+v", p)
	}
}

func TestPlayerSnapshotWireShape(t *testing.T) {
	p := NewPlayer("p1", "Frosty", DefaultCreatorName, nil, nil, time.UnixMilli(1733000000123))

	raw, err := json.Marshal(p.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "displayName", "avatar", "transform", "lastActive"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Missing key %q in %s", key, raw)
		}
	}
	if m["lastActive"].(float64) != 1733000000123 {
		t.Errorf("Expected epoch millis, got %v", m["lastActive"])
	}
	if _, ok := m["avatar"].(map[string]any)["character"]; ok {
		t.Error("Empty character must be omitted")
	}
}
