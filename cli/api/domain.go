package api

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	ds "github.com/oaiiae/alerta/datastores"
	"github.com/oaiiae/alerta/editor"
	"github.com/oaiiae/alerta/handlers"
	"github.com/oaiiae/alerta/seed"
)

type DomainOptions struct {
	Variant     string        `doc:"screen variant, contacts or number"           default:"contacts"`
	SeedFile    string        `doc:"YAML file seeding profile, device and contacts"`
	DeviceID    string        `doc:"device identifier, generated when empty"`
	MaxContacts int           `doc:"maximum number of emergency contacts"         default:"3"`
	SessionTTL  time.Duration `doc:"idle time after which an edit session is dropped" default:"30m"`
}

func (o *DomainOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Variant, validation.Required, validation.In(handlers.VariantContacts, handlers.VariantNumber)),
		validation.Field(&o.MaxContacts, validation.Required, validation.Min(1)),
		validation.Field(&o.SessionTTL, validation.Min(time.Second)),
	)
}

// Domain is the in-memory state of a running service.
type Domain struct {
	Variant  string
	Seed     *seed.File
	Contacts *ds.ContactsInmem
	Number   *ds.NumberInmem
	Sessions *editor.Sessions
}

// NewDomain seeds the stores from the seed file, if any, completed by provider.
func NewDomain(options *DomainOptions, provider *seed.Provider) (*Domain, error) {
	err := options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid domain options: %w", err)
	}

	file := new(seed.File)
	if options.SeedFile != "" {
		file, err = seed.Load(options.SeedFile)
		if err != nil {
			return nil, err
		}
	}
	if options.DeviceID != "" {
		file.DeviceID = options.DeviceID
	}
	file.Defaults(provider)

	seeds := make([]ds.Contact, 0, len(file.Contacts))
	for _, c := range file.Contacts {
		seeds = append(seeds, ds.Contact{Name: c.Name, Number: c.Number})
	}
	contacts, err := ds.NewContactsInmem(options.MaxContacts, seeds...)
	if err != nil {
		return nil, fmt.Errorf("seed contacts: %w", err)
	}
	number := ds.NewNumberInmem(file.Number)

	return &Domain{
		Variant:  options.Variant,
		Seed:     file,
		Contacts: contacts,
		Number:   number,
		Sessions: editor.NewSessions(contacts, number, options.SessionTTL),
	}, nil
}
