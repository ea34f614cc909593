package datastores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberInmem_Set(t *testing.T) {
	ctx := t.Context()
	s := NewNumberInmem("+49 165 1234567")

	require.NoError(t, s.Set(ctx, "+49 171 7654321"))
	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+49 171 7654321", got)
}

func TestNumberInmem_SetBlank(t *testing.T) {
	ctx := t.Context()
	s := NewNumberInmem("+49 165 1234567")

	for _, number := range []string{"", "  "} {
		require.ErrorIs(t, s.Set(ctx, number), ErrValidation)
	}
	got, _ := s.Get(ctx)
	assert.Equal(t, "+49 165 1234567", got)
}

func TestUUID_Text(t *testing.T) {
	id := NewUUID()
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, string(text), id.String())

	var got UUID
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, id, got)
	require.Error(t, got.UnmarshalText([]byte("x")))
}
