package editor

import (
	"errors"
	"sync"
	"time"

	ds "github.com/oaiiae/alerta/datastores"
)

// DefaultSessionTTL is how long an untouched session survives.
const DefaultSessionTTL = 30 * time.Minute

var ErrNoSession = errors.New("editor: session not found")

// Sessions holds one [Session] per mounted screen.
// Sessions idle for longer than the TTL are dropped when a new one is mounted.
type Sessions struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	contacts ds.ContactsStore
	number   ds.NumberStore
	sessions map[ds.UUID]*Session
}

func NewSessions(contacts ds.ContactsStore, number ds.NumberStore, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		ttl:      ttl,
		now:      time.Now,
		contacts: contacts,
		number:   number,
		sessions: make(map[ds.UUID]*Session),
	}
}

// Mount creates a closed session for a contact list screen when multiple is set,
// for a single number screen otherwise.
func (m *Sessions) Mount(multiple bool) (ds.UUID, *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()

	id := ds.NewUUID()
	s := New(Options{MultipleContacts: multiple, Contacts: m.contacts, Number: m.number})
	s.now = m.now
	s.touched = m.now()
	m.sessions[id] = s
	return id, s
}

func (m *Sessions) Get(id ds.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

func (m *Sessions) Unmount(id ds.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	if !ok {
		return ErrNoSession
	}
	delete(m.sessions, id)
	return nil
}

func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// prune must be called with mu held.
func (m *Sessions) prune() {
	deadline := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.lastTouched().Before(deadline) {
			delete(m.sessions, id)
		}
	}
}
