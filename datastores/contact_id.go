package datastores

import (
	"encoding/base32"
	"fmt"

	"github.com/google/uuid"
)

// ContactID identifies a contact within its registry. It is a random UUID
// written as unpadded base32, which keeps it short and safe in a URL path.
type ContactID struct{ u uuid.UUID }

var (
	contactIDEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	contactIDLen      = contactIDEncoding.EncodedLen(len(uuid.UUID{}))
)

func newContactID() ContactID { return ContactID{uuid.Must(uuid.NewRandom())} }

// IsZero reports whether id was never assigned by a registry.
func (id ContactID) IsZero() bool { return id.u == uuid.Nil }

func (id ContactID) String() string { return contactIDEncoding.EncodeToString(id.u[:]) }

func (id ContactID) AppendText(b []byte) ([]byte, error) {
	return contactIDEncoding.AppendEncode(b, id.u[:]), nil
}

func (id ContactID) MarshalText() ([]byte, error) {
	return id.AppendText(nil)
}

// UnmarshalText parses the form written by [ContactID.MarshalText].
// On error id is left unchanged.
func (id *ContactID) UnmarshalText(b []byte) error {
	if len(b) != contactIDLen {
		return fmt.Errorf("contact id: want %d characters, got %d", contactIDLen, len(b))
	}
	var u uuid.UUID
	_, err := contactIDEncoding.Decode(u[:], b)
	if err != nil {
		return fmt.Errorf("contact id: %w", err)
	}
	id.u = u
	return nil
}
