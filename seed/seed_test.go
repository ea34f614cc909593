package seed

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_DeviceID(t *testing.T) {
	p := NewProvider(rand.NewPCG(1, 2))
	re := regexp.MustCompile(`^ALERTA-[0-9A-Z]{9}$`)
	for range 100 {
		assert.Regexp(t, re, p.DeviceID())
	}
}

func TestProvider_Deterministic(t *testing.T) {
	a, b := NewProvider(rand.NewPCG(7, 7)), NewProvider(rand.NewPCG(7, 7))
	assert.Equal(t, a.DeviceID(), b.DeviceID())
	assert.Equal(t, a.PhoneNumber(), b.PhoneNumber())
}

func TestProvider_PhoneNumber(t *testing.T) {
	p := NewProvider(nil)
	re := regexp.MustCompile(`^\+49 1(5[0-9]|6[0-9]|7[0-9]) [1-9][0-9]{6}$`)
	for range 100 {
		assert.Regexp(t, re, p.PhoneNumber())
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("SISTER_NUMBER", "+49 171 7654321")
	path := writeFile(t, `
profile:
  name: Alice
device_id: ALERTA-TEST00001
contacts:
  - name: Mom & Dad
    number: "+49 165 1234567"
  - name: Sister
    number: ${SISTER_NUMBER}
number: "112"
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &File{
		Profile:  Profile{Name: "Alice"},
		DeviceID: "ALERTA-TEST00001",
		Contacts: []Contact{
			{Name: "Mom & Dad", Number: "+49 165 1234567"},
			{Name: "Sister", Number: "+49 171 7654321"},
		},
		Number: "112",
	}, f)

	f.Defaults(NewProvider(nil))
	assert.Equal(t, "Alice", f.Profile.Name)
	assert.Equal(t, "You are protected", f.Profile.Status)
	assert.Equal(t, "ALERTA-TEST00001", f.DeviceID)
	assert.Len(t, f.Contacts, 2)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeFile(t, "contacts:\n  - name: Sister\n"))
	require.ErrorContains(t, err, "validation failed")

	_, err = Load(writeFile(t, "contacts:\n  - name: Sister\n    number: \"  \"\n"))
	require.ErrorContains(t, err, "validation failed")

	_, err = Load(writeFile(t, "number: \"   \"\n"))
	require.ErrorContains(t, err, "Number: cannot be blank")

	_, err = Load(writeFile(t, "contacts: [\n"))
	require.ErrorContains(t, err, "failed to parse")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaults(t *testing.T) {
	f := new(File).Defaults(NewProvider(rand.NewPCG(1, 1)))
	assert.Equal(t, "Benjamin", f.Profile.Name)
	assert.Regexp(t, `^ALERTA-`, f.DeviceID)
	require.Len(t, f.Contacts, 1)
	assert.Equal(t, "Mom & Dad", f.Contacts[0].Name)
	assert.NotEmpty(t, f.Contacts[0].Number)
	assert.NotEmpty(t, f.Number)

	empty := (&File{Contacts: []Contact{}}).Defaults(NewProvider(nil))
	assert.Empty(t, empty.Contacts)
}
