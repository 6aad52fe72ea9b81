package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = time.Hour

// Session is one browser editing session. Its controller is only reached
// through Do, which serializes access.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	ctl        *studio.Controller
	lastActive time.Time
}

// Do runs fn with exclusive access to the session's controller and marks
// the session as active.
func (s *Session) Do(now time.Time, fn func(*studio.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = now
	fn(s.ctl)
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ttl > 0 && now.Sub(s.lastActive) > ttl
}

// Manager keeps editing sessions in memory, keyed by a random UUID.
// Sessions idle for longer than the TTL are dropped on access and by
// Cleanup.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newCtl   func() *studio.Controller
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a manager that starts every session with a controller
// from newCtl. A ttl of zero keeps sessions until deleted.
func NewManager(newCtl func() *studio.Controller, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		newCtl:   newCtl,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new session.
func (m *Manager) Create() *Session {
	now := m.now()
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		ctl:        m.newCtl(),
		lastActive: now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id. Unknown and expired ids are
// SESSION_NOT_FOUND errors.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	if s.expired(m.now(), m.ttl) {
		m.remove(id)
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q expired", id)
	}
	return s, nil
}

// Delete ends a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Cleanup drops expired sessions and returns how many were removed.
func (m *Manager) Cleanup() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
