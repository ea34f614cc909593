package datastores

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// ContactsInmem implements [ContactsStore].
// Contacts are kept in insertion order and looked up by scanning,
// the collection being a handful of entries at most.
type ContactsInmem struct {
	mu       sync.Mutex
	limit    int
	contacts []Contact
}

var _ ContactsStore = (*ContactsInmem)(nil)

// NewContactsInmem returns a store holding at most limit contacts, seeded with cs.
// Seeds get fresh ids and must be valid. A limit below 1 means [DefaultContactsLimit].
func NewContactsInmem(limit int, cs ...Contact) (*ContactsInmem, error) {
	if limit < 1 {
		limit = DefaultContactsLimit
	}
	if len(cs) > limit {
		return nil, fmt.Errorf("%w: %d seed contacts for a limit of %d", ErrCapacityExceeded, len(cs), limit)
	}
	s := &ContactsInmem{limit: limit, contacts: make([]Contact, 0, limit)}
	for i := range cs {
		_, err := s.Create(context.Background(), &cs[i])
		if err != nil {
			return nil, fmt.Errorf("seed contact %d: %w", i, err)
		}
	}
	return s, nil
}

func (s *ContactsInmem) Create(_ context.Context, c *Contact) (ContactID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contacts) >= s.limit {
		return ContactID{}, ErrCapacityExceeded
	}
	err := c.Validate()
	if err != nil {
		return ContactID{}, err
	}
retry:
	c.ID = newContactID()
	if s.index(c.ID) >= 0 {
		goto retry
	}
	s.contacts = append(s.contacts, *c)
	return c.ID, nil
}

func (s *ContactsInmem) List(_ context.Context) ([]Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts), nil
}

func (s *ContactsInmem) Get(_ context.Context, id ContactID) (Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return Contact{}, ErrObjectNotFound
	}
	return s.contacts[i], nil
}

func (s *ContactsInmem) Update(_ context.Context, c *Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(c.ID)
	if i < 0 {
		return ErrObjectNotFound
	}
	err := c.Validate()
	if err != nil {
		return err
	}
	s.contacts[i].Name, s.contacts[i].Number = c.Name, c.Number
	return nil
}

func (s *ContactsInmem) Delete(_ context.Context, id ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrObjectNotFound
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return nil
}

func (s *ContactsInmem) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts), nil
}

func (s *ContactsInmem) Limit() int { return s.limit }

// index must be called with mu held.
func (s *ContactsInmem) index(id ContactID) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool { return c.ID == id })
}
