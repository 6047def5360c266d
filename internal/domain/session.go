package domain

import "time"

// Session is one shared decorating party.
// It is not safe for concurrent use; the hub goroutine owns every session.
type Session struct {
	Code        string
	CreatedAt   time.Time
	WeatherSeed float64

	decorations []Decoration
	players     map[string]*Player
	order       []string // player ids in join order
}

// NewSession creates an empty session
func NewSession(code string, createdAt time.Time, weatherSeed float64) *Session {
	return &Session{
		Code:        code,
		CreatedAt:   createdAt,
		WeatherSeed: weatherSeed,
		decorations: make([]Decoration, 0),
		players:     make(map[string]*Player),
	}
}

// AddPlayer attaches a player; an existing id is replaced in place
func (s *Session) AddPlayer(p *Player) {
	if _, exists := s.players[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.players[p.ID] = p
}

// RemovePlayer detaches a player and reports whether it was present
func (s *Session) RemovePlayer(id string) bool {
	if _, exists := s.players[id]; !exists {
		return false
	}
	delete(s.players, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Player returns the player with the given id
func (s *Session) Player(id string) (*Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

// PlayerCount returns the number of attached players
func (s *Session) PlayerCount() int {
	return len(s.players)
}

// PlayerIDs returns player ids in join order
func (s *Session) PlayerIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// PlaceDecoration appends a decoration. A decoration reusing a live id
// replaces that entry so ids stay unique.
func (s *Session) PlaceDecoration(d Decoration) {
	if i := s.indexOf(d.ID); i >= 0 {
		s.decorations[i] = d
		return
	}
	s.decorations = append(s.decorations, d)
}

// UpdateDecoration merges req into the decoration with the given id.
// Returns false when no decoration matched.
func (s *Session) UpdateDecoration(id string, req DecorationRequest) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.decorations[i] = s.decorations[i].Apply(req)
	return true
}

// RemoveDecoration deletes the decoration with the given id.
// Returns false when no decoration matched.
func (s *Session) RemoveDecoration(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.decorations = append(s.decorations[:i], s.decorations[i+1:]...)
	return true
}

// Decorations returns a copy of the decorations in insertion order
func (s *Session) Decorations() []Decoration {
	out := make([]Decoration, len(s.decorations))
	copy(out, s.decorations)
	return out
}

func (s *Session) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.decorations {
		if s.decorations[i].ID == id {
			return i
		}
	}
	return -1
}

// SessionSnapshot is the session_state payload
type SessionSnapshot struct {
	Code        string           `json:"code"`
	CreatedAt   int64            `json:"createdAt"`
	WeatherSeed float64          `json:"weatherSeed"`
	Decorations []Decoration     `json:"decorations"`
	Players     []PlayerSnapshot `json:"players"`
}

// Snapshot captures the current state for broadcast
func (s *Session) Snapshot() SessionSnapshot {
	players := make([]PlayerSnapshot, 0, len(s.order))
	for _, id := range s.order {
		players = append(players, s.players[id].Snapshot())
	}
	return SessionSnapshot{
		Code:        s.Code,
		CreatedAt:   s.CreatedAt.UnixMilli(),
		WeatherSeed: s.WeatherSeed,
		Decorations: s.Decorations(),
		Players:     players,
	}
}
