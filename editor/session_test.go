package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/oaiiae/alerta/datastores"
)

func newContactsSession(t *testing.T, cs ...ds.Contact) (*Session, *ds.ContactsInmem) {
	t.Helper()
	store, err := ds.NewContactsInmem(ds.DefaultContactsLimit, cs...)
	require.NoError(t, err)
	return New(Options{MultipleContacts: true, Contacts: store}), store
}

func list(t *testing.T, store ds.ContactsStore) []ds.Contact {
	t.Helper()
	cs, err := store.List(t.Context())
	require.NoError(t, err)
	return cs
}

func TestSession_AddCommit(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})

	require.NoError(t, s.OpenAdd(ctx))
	assert.Equal(t, View{Open: true, Mode: ModeAdd}, s.View())

	require.NoError(t, s.SetName("Sister"))
	require.NoError(t, s.SetNumber("+49 171 7654321"))
	id, err := s.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, View{}, s.View())

	cs := list(t, store)
	require.Len(t, cs, 2)
	assert.Equal(t, "Mom & Dad", cs[0].Name)
	assert.Equal(t, ds.Contact{ID: id, Name: "Sister", Number: "+49 171 7654321"}, cs[1])
}

func TestSession_AddCapacity(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})

	for _, name := range []string{"Sister", "Brother"} {
		require.NoError(t, s.OpenAdd(ctx))
		require.NoError(t, s.SetName(name))
		require.NoError(t, s.SetNumber("+49 171 7654321"))
		_, err := s.Commit(ctx)
		require.NoError(t, err)
	}
	require.Len(t, list(t, store), 3)

	require.ErrorIs(t, s.OpenAdd(ctx), ds.ErrCapacityExceeded)
	assert.False(t, s.View().Open)
}

func TestSession_CommitEmptyNameStaysOpen(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})

	require.NoError(t, s.OpenAdd(ctx))
	require.NoError(t, s.SetName(""))
	_, err := s.Commit(ctx)
	require.ErrorIs(t, err, ds.ErrValidation)

	assert.Equal(t, View{Open: true, Mode: ModeAdd}, s.View())
	assert.Len(t, list(t, store), 1)

	require.NoError(t, s.SetName("Sister"))
	require.NoError(t, s.SetNumber("+49 171 7654321"))
	_, err = s.Commit(ctx)
	require.NoError(t, err)
	assert.Len(t, list(t, store), 2)
}

func TestSession_EditCommit(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t,
		ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"},
		ds.Contact{Name: "Sister", Number: "+49 171 7654321"},
	)
	before := list(t, store)

	require.NoError(t, s.OpenEdit(ctx, before[0].ID))
	assert.Equal(t, View{
		Open:      true,
		Mode:      ModeEdit,
		ContactID: before[0].ID,
		Buffer:    Buffer{Name: "Mom & Dad", Number: "+49 165 1234567"},
	}, s.View())

	require.NoError(t, s.SetNumber("+49 160 0000000"))
	id, err := s.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, before[0].ID, id)

	after := list(t, store)
	assert.Equal(t, ds.Contact{ID: before[0].ID, Name: "Mom & Dad", Number: "+49 160 0000000"}, after[0])
	assert.Equal(t, before[1], after[1])
}

func TestSession_EditBlankStaysOpen(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})
	before := list(t, store)

	require.NoError(t, s.OpenEdit(ctx, before[0].ID))
	require.NoError(t, s.SetNumber("   "))
	_, err := s.Commit(ctx)
	require.ErrorIs(t, err, ds.ErrValidation)

	v := s.View()
	assert.True(t, v.Open)
	assert.Equal(t, ModeEdit, v.Mode)
	assert.Equal(t, "   ", v.Buffer.Number)
	assert.Equal(t, before, list(t, store))
}

func TestSession_EditCancelLeavesStoreUnchanged(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})
	before := list(t, store)

	require.NoError(t, s.OpenEdit(ctx, before[0].ID))
	require.NoError(t, s.SetName("someone else"))
	s.Cancel()

	assert.Equal(t, View{}, s.View())
	assert.Equal(t, before, list(t, store))

	// closed sessions can be reopened
	require.NoError(t, s.OpenEdit(ctx, before[0].ID))
	assert.Equal(t, "Mom & Dad", s.View().Buffer.Name)
}

func TestSession_Delete(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})
	id := list(t, store)[0].ID

	require.NoError(t, s.OpenEdit(ctx, id))
	require.NoError(t, s.Delete(ctx))

	assert.Empty(t, list(t, store))
	assert.False(t, s.View().Open)
}

func TestSession_DeleteVanishedContact(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})
	id := list(t, store)[0].ID

	require.NoError(t, s.OpenEdit(ctx, id))
	require.NoError(t, store.Delete(ctx, id))

	require.ErrorIs(t, s.Delete(ctx), ds.ErrObjectNotFound)
	assert.True(t, s.View().Open)
}

func TestSession_StateErrors(t *testing.T) {
	ctx := t.Context()
	s, store := newContactsSession(t, ds.Contact{Name: "Mom & Dad", Number: "+49 165 1234567"})
	id := list(t, store)[0].ID

	require.ErrorIs(t, s.SetName("x"), ErrNotOpen)
	require.ErrorIs(t, s.SetNumber("x"), ErrNotOpen)
	_, err := s.Commit(ctx)
	require.ErrorIs(t, err, ErrNotOpen)
	require.ErrorIs(t, s.Delete(ctx), ErrNotOpen)

	require.ErrorIs(t, s.OpenEdit(ctx, ds.ContactID{}), ds.ErrObjectNotFound)
	assert.False(t, s.View().Open)

	require.NoError(t, s.OpenAdd(ctx))
	require.ErrorIs(t, s.OpenAdd(ctx), ErrAlreadyOpen)
	require.ErrorIs(t, s.OpenEdit(ctx, id), ErrAlreadyOpen)
	require.ErrorIs(t, s.Delete(ctx), ErrUnsupported)
	assert.Equal(t, ModeAdd, s.View().Mode)
}

func TestSession_SingleNumber(t *testing.T) {
	ctx := t.Context()
	number := ds.NewNumberInmem("+49 165 1234567")
	s := New(Options{Number: number})
	assert.False(t, s.MultipleContacts())

	require.ErrorIs(t, s.OpenAdd(ctx), ErrUnsupported)

	require.NoError(t, s.OpenEdit(ctx, ds.ContactID{}))
	assert.Equal(t, "+49 165 1234567", s.View().Buffer.Number)
	require.ErrorIs(t, s.Delete(ctx), ErrUnsupported)

	require.NoError(t, s.SetNumber(" "))
	_, err := s.Commit(ctx)
	require.ErrorIs(t, err, ds.ErrValidation)
	assert.True(t, s.View().Open)

	require.NoError(t, s.SetNumber("112"))
	id, err := s.Commit(ctx)
	require.NoError(t, err)
	assert.True(t, id.IsZero())
	assert.False(t, s.View().Open)

	got, _ := number.Get(ctx)
	assert.Equal(t, "112", got)
}
