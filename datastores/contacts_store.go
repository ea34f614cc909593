package datastores

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultContactsLimit is the number of emergency contacts a registry holds
// unless configured otherwise.
const DefaultContactsLimit = 3

type Contact struct {
	ID     ContactID
	Name   string
	Number string
}

// Validate checks that both name and number carry non-blank text.
// A failure wraps [ErrValidation] and the per-field [validation.Errors].
func (c *Contact) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, notBlank),
		validation.Field(&c.Number, validation.Required, notBlank),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// ContactsStore is an ordered, bounded collection of contacts.
// Failed operations leave the store unchanged.
type ContactsStore interface {
	Create(context.Context, *Contact) (ContactID, error)
	List(context.Context) ([]Contact, error)
	Get(context.Context, ContactID) (Contact, error)
	Update(context.Context, *Contact) error
	Delete(context.Context, ContactID) error
	Count(context.Context) (int, error)
	Limit() int
}

// NumberStore holds a single emergency number.
type NumberStore interface {
	Get(context.Context) (string, error)
	Set(context.Context, string) error
}

var (
	ErrObjectNotFound   = errors.New("store: object not found")
	ErrCapacityExceeded = errors.New("store: capacity exceeded")
	ErrValidation       = errors.New("store: validation failed")
)

//nolint: gochecknoglobals
var notBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "cannot be blank"),
)
