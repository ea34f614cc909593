// Package editor holds the transient edit state behind the emergency contact screens.
//
// A [Session] is either closed or open on one of two modes: adding a new contact or
// editing an existing one. While open it owns a buffer with the name and number being
// typed. Committing merges the buffer into the store and closes the session. A failed
// commit keeps the session open with its buffer so the user can correct it.
//
// The same session drives the single-number screen when built without multiple
// contacts support: there is nothing to add or delete and the buffer edits the one
// emergency number.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	ds "github.com/oaiiae/alerta/datastores"
)

var (
	ErrNotOpen     = errors.New("editor: no edit in progress")
	ErrAlreadyOpen = errors.New("editor: edit already in progress")
	ErrUnsupported = errors.New("editor: not supported by this variant")
)

type Mode int

const (
	ModeAdd Mode = iota + 1
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Buffer is the form being filled in while a session is open.
type Buffer struct {
	Name   string
	Number string
}

// View is a snapshot of a [Session].
type View struct {
	Open      bool
	Mode      Mode // zero when closed
	ContactID ds.ContactID
	Buffer    Buffer
}

type Options struct {
	// MultipleContacts selects the contact list screen over the single number one.
	MultipleContacts bool

	Contacts ds.ContactsStore // required with MultipleContacts
	Number   ds.NumberStore   // required without MultipleContacts
}

type Session struct {
	mu   sync.Mutex
	opts Options

	mode   Mode
	target ds.ContactID
	buffer Buffer

	now     func() time.Time
	touched time.Time
}

// New returns a closed session.
func New(opts Options) *Session {
	return &Session{opts: opts, now: time.Now}
}

func (s *Session) MultipleContacts() bool { return s.opts.MultipleContacts }

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Open:      s.mode != 0,
		Mode:      s.mode,
		ContactID: s.target,
		Buffer:    s.buffer,
	}
}

// OpenAdd opens the session on a blank buffer.
// It fails with [ds.ErrCapacityExceeded] when the store is full.
func (s *Session) OpenAdd(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opts.MultipleContacts {
		return ErrUnsupported
	}
	if s.mode != 0 {
		return ErrAlreadyOpen
	}

	n, err := s.opts.Contacts.Count(ctx)
	if err != nil {
		return err
	}
	if n >= s.opts.Contacts.Limit() {
		return ds.ErrCapacityExceeded
	}

	s.open(ModeAdd, ds.ContactID{}, Buffer{})
	return nil
}

// OpenEdit opens the session on a copy of contact id.
// Without multiple contacts id is ignored and the buffer gets the emergency number.
func (s *Session) OpenEdit(ctx context.Context, id ds.ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != 0 {
		return ErrAlreadyOpen
	}

	if !s.opts.MultipleContacts {
		number, err := s.opts.Number.Get(ctx)
		if err != nil {
			return err
		}
		s.open(ModeEdit, ds.ContactID{}, Buffer{Number: number})
		return nil
	}

	c, err := s.opts.Contacts.Get(ctx, id)
	if err != nil {
		return err
	}
	s.open(ModeEdit, c.ID, Buffer{Name: c.Name, Number: c.Number})
	return nil
}

func (s *Session) SetName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == 0 {
		return ErrNotOpen
	}
	s.buffer.Name = name
	s.touched = s.now()
	return nil
}

func (s *Session) SetNumber(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == 0 {
		return ErrNotOpen
	}
	s.buffer.Number = number
	s.touched = s.now()
	return nil
}

// Commit merges the buffer into the store and closes the session. It returns the
// id of the added or edited contact, zero on the single number screen.
// On error the session stays open.
func (s *Session) Commit(ctx context.Context) (ds.ContactID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		id  ds.ContactID
		err error
	)
	switch {
	case s.mode == 0:
		return id, ErrNotOpen

	case !s.opts.MultipleContacts:
		err = s.opts.Number.Set(ctx, s.buffer.Number)

	case s.mode == ModeAdd:
		id, err = s.opts.Contacts.Create(ctx, &ds.Contact{Name: s.buffer.Name, Number: s.buffer.Number})

	default:
		id = s.target
		err = s.opts.Contacts.Update(ctx, &ds.Contact{ID: id, Name: s.buffer.Name, Number: s.buffer.Number})
	}
	if err != nil {
		return ds.ContactID{}, fmt.Errorf("commit %s: %w", s.mode, err)
	}

	s.close()
	return id, nil
}

// Delete removes the contact being edited and closes the session.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case !s.opts.MultipleContacts:
		return ErrUnsupported
	case s.mode == 0:
		return ErrNotOpen
	case s.mode != ModeEdit:
		return fmt.Errorf("delete while in %s mode: %w", s.mode, ErrUnsupported)
	}

	err := s.opts.Contacts.Delete(ctx, s.target)
	if err != nil {
		return err
	}
	s.close()
	return nil
}

// Cancel discards the buffer without touching the store.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.close()
}

func (s *Session) open(mode Mode, target ds.ContactID, buffer Buffer) {
	s.mode, s.target, s.buffer = mode, target, buffer
	s.touched = s.now()
}

func (s *Session) close() {
	s.mode, s.target, s.buffer = 0, ds.ContactID{}, Buffer{}
	s.touched = s.now()
}

func (s *Session) lastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}
