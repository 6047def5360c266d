package domain

import "time"

// Vec3 is a point or euler rotation in world space
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Transform places an avatar in the village
type Transform struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
}

// AvatarColors holds the two tintable parts of an avatar
type AvatarColors struct {
	Outfit string `json:"outfit"`
	Accent string `json:"accent"`
}

// Avatar is the normalized appearance record broadcast to every client
type Avatar struct {
	Colors    AvatarColors `json:"colors"`
	Outfit    string       `json:"outfit"`
	Hair      string       `json:"hair"`
	Character string       `json:"character,omitempty"`
}

// AvatarColorsPatch carries only the colors present in an inbound message
type AvatarColorsPatch struct {
	Outfit *string `json:"outfit,omitempty"`
	Accent *string `json:"accent,omitempty"`
}

// AvatarPatch is the inbound avatar shape. A nil field was not sent.
type AvatarPatch struct {
	Colors    *AvatarColorsPatch `json:"colors,omitempty"`
	Outfit    *string            `json:"outfit,omitempty"`
	Hair      *string            `json:"hair,omitempty"`
	Character *string            `json:"character,omitempty"`
}

// NormalizeAvatar builds a full avatar, defaulting each missing or empty field
func NormalizeAvatar(p *AvatarPatch) Avatar {
	if p == nil {
		p = &AvatarPatch{}
	}
	colors := p.Colors
	if colors == nil {
		colors = &AvatarColorsPatch{}
	}
	return Avatar{
		Colors: AvatarColors{
			Outfit: orDefault(colors.Outfit, DefaultOutfitColor),
			Accent: orDefault(colors.Accent, DefaultAccentColor),
		},
		Outfit:    orDefault(p.Outfit, DefaultOutfit),
		Hair:      orDefault(p.Hair, DefaultHair),
		Character: orDefault(p.Character, ""),
	}
}

// Merge shallow-merges a patch over the avatar; colors merge one level deeper.
func (a Avatar) Merge(p *AvatarPatch) Avatar {
	if p == nil {
		return a
	}
	if p.Outfit != nil {
		a.Outfit = *p.Outfit
	}
	if p.Hair != nil {
		a.Hair = *p.Hair
	}
	if p.Character != nil {
		a.Character = *p.Character
	}
	if p.Colors != nil {
		if p.Colors.Outfit != nil {
			a.Colors.Outfit = *p.Colors.Outfit
		}
		if p.Colors.Accent != nil {
			a.Colors.Accent = *p.Colors.Accent
		}
	}
	return a
}

// Player is one connected participant of a session
type Player struct {
	ID          string
	DisplayName string
	Avatar      Avatar
	Transform   Transform
	LastActive  time.Time
}

// NewPlayer creates a player from a create/join request.
// fallbackName is used when displayName is empty.
func NewPlayer(id, displayName, fallbackName string, avatar *AvatarPatch, transform *Transform, now time.Time) *Player {
	if displayName == "" {
		displayName = fallbackName
	}
	p := &Player{
		ID:          id,
		DisplayName: displayName,
		Avatar:      NormalizeAvatar(avatar),
		LastActive:  now,
	}
	if transform != nil {
		p.Transform = *transform
	}
	return p
}

// ApplyUpdate records an update_avatar message from this player
func (p *Player) ApplyUpdate(req UpdateAvatarRequest, now time.Time) {
	p.LastActive = now
	if req.Transform != nil {
		p.Transform = *req.Transform
	}
	if req.Avatar != nil {
		p.Avatar = p.Avatar.Merge(req.Avatar)
	}
}

// PlayerSnapshot is the wire shape of a player inside session_state
type PlayerSnapshot struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Avatar      Avatar    `json:"avatar"`
	Transform   Transform `json:"transform"`
	LastActive  int64     `json:"lastActive"`
}

// Snapshot returns the serializable view of the player
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Avatar:      p.Avatar,
		Transform:   p.Transform,
		LastActive:  p.LastActive.UnixMilli(),
	}
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
