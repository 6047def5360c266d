package domain

// DecorationTransform places a decoration on a cabin
type DecorationTransform struct {
	Position Vec3    `json:"position"`
	Rotation Vec3    `json:"rotation"`
	Scale    float64 `json:"scale"`
}

// Decoration is one placed object. Type, colors and cabin are opaque to the server.
type Decoration struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"ownerId"`
	Type      string              `json:"type"`
	Transform DecorationTransform `json:"transform"`
	Color     string              `json:"color"`
	Glow      float64             `json:"glow"`
	CabinID   string              `json:"cabinId"`
	Colors    []string            `json:"colors,omitempty"`
}

// DecorationTransformInput is the inbound transform; scale may be omitted
type DecorationTransformInput struct {
	Position Vec3     `json:"position"`
	Rotation Vec3     `json:"rotation"`
	Scale    *float64 `json:"scale,omitempty"`
}

// NewDecoration builds a decoration from a place_decoration request.
// newID is called only when the request carries no id.
func NewDecoration(ownerID string, req DecorationRequest, newID func() string) Decoration {
	id := req.ID
	if id == "" {
		id = newID()
	}
	d := Decoration{
		ID:        id,
		OwnerID:   ownerID,
		Type:      DefaultDecorationType,
		Transform: DecorationTransform{Scale: DefaultDecorationScale},
		Color:     DefaultDecorationColor,
		Glow:      DefaultDecorationGlow,
		CabinID:   DefaultCabinID,
		Colors:    req.Colors,
	}
	if t := req.TypeName(); t != "" {
		d.Type = t
	}
	if req.Scale != nil {
		d.Transform.Scale = *req.Scale
	}
	if req.Transform != nil {
		d.Transform.Position = req.Transform.Position
		d.Transform.Rotation = req.Transform.Rotation
		if req.Transform.Scale != nil {
			d.Transform.Scale = *req.Transform.Scale
		}
	}
	if req.Color != nil && *req.Color != "" {
		d.Color = *req.Color
	}
	if req.Glow != nil {
		d.Glow = *req.Glow
	}
	if req.CabinID != nil && *req.CabinID != "" {
		d.CabinID = *req.CabinID
	}
	return d
}

// Apply merges the fields an update_decoration request provided.
// Id and owner never change: ownerId stays the player who placed it, even when
// someone else edits it later.
func (d Decoration) Apply(req DecorationRequest) Decoration {
	if t := req.TypeName(); t != "" {
		d.Type = t
	}
	if req.Transform != nil {
		d.Transform.Position = req.Transform.Position
		d.Transform.Rotation = req.Transform.Rotation
		if req.Transform.Scale != nil {
			d.Transform.Scale = *req.Transform.Scale
		}
	}
	if req.Scale != nil && (req.Transform == nil || req.Transform.Scale == nil) {
		d.Transform.Scale = *req.Scale
	}
	if req.Color != nil {
		d.Color = *req.Color
	}
	if req.Glow != nil {
		d.Glow = *req.Glow
	}
	if req.CabinID != nil {
		d.CabinID = *req.CabinID
	}
	if req.Colors != nil {
		d.Colors = req.Colors
	}
	return d
}
