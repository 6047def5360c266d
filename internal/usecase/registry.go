package usecase

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/stephyg0/christmas/internal/domain"
)

// sessionCodeRegex matches a canonical join code
var sessionCodeRegex = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{6}$`)

// CodeGenerator produces candidate session codes
type CodeGenerator func() (string, error)

// SessionRegistry maps join codes to live sessions
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	generate CodeGenerator
	seed     func() float64
	now      func() time.Time
}

// NewSessionRegistry creates an empty registry using random codes
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*domain.Session),
		generate: GenerateSessionCode,
		seed:     rand.Float64,
		now:      time.Now,
	}
}

// SetCodeGenerator replaces the code source
func (r *SessionRegistry) SetCodeGenerator(g CodeGenerator) {
	r.generate = g
}

// SetClock replaces the time source used for createdAt
func (r *SessionRegistry) SetClock(now func() time.Time) {
	r.now = now
}

// GenerateSessionCode draws SessionCodeLength characters from the code alphabet
func GenerateSessionCode() (string, error) {
	buf := make([]byte, domain.SessionCodeLength)
	if _, err := cryptorand.Read(buf); err != nil {
		return "", err
	}
	alphabet := domain.SessionCodeAlphabet
	code := make([]byte, domain.SessionCodeLength)
	for i, b := range buf {
		code[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(code), nil
}

// Create registers a new empty session under a code no live session uses
func (r *SessionRegistry) Create() (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < domain.MaxCodeAttempts; i++ {
		code, err := r.generate()
		if err != nil {
			return nil, err
		}
		if _, exists := r.sessions[code]; exists {
			continue
		}

		session := domain.NewSession(code, r.now(), r.seed())
		r.sessions[code] = session
		return session, nil
	}
	return nil, domain.ErrCodeSpaceExhausted
}

// Get returns the session for an exact (already canonical) code
func (r *SessionRegistry) Get(code string) (*domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[code]
	return session, ok
}

// Remove deletes a session; removing a missing code is a no-op
func (r *SessionRegistry) Remove(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, code)
}

// Exists checks if a session is live
func (r *SessionRegistry) Exists(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.sessions[code]
	return exists
}

// Count returns the number of live sessions
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// NormalizeCode canonicalizes a user-entered join code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidSessionCode validates a canonical join code format
func IsValidSessionCode(code string) bool {
	return sessionCodeRegex.MatchString(code)
}
