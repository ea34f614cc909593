package seed

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// File is the YAML seed file. Empty fields fall back to [Defaults].
//
//	profile:
//	  name: Benjamin
//	device_id: ALERTA-DEMO00001
//	contacts:
//	  - name: Mom & Dad
//	    number: ${MOM_NUMBER}
//	number: "+49 165 1234567"
type File struct {
	Profile  Profile   `yaml:"profile"`
	DeviceID string    `yaml:"device_id"`
	Contacts []Contact `yaml:"contacts"`
	Number   string    `yaml:"number"`
}

type Profile struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

type Contact struct {
	Name   string `yaml:"name"`
	Number string `yaml:"number"`
}

// notBlank rejects whitespace only strings, empty ones are left to [validation.Required].
var notBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "cannot be blank"),
)

func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, notBlank),
		validation.Field(&c.Number, validation.Required, notBlank),
	)
}

// Validate checks the fields that are set, an empty number gets a default.
func (f *File) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Contacts),
		validation.Field(&f.Number, notBlank),
	)
}

// Load reads a seed file, expanding environment variables before parsing.
func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", filename, err)
	}

	var f File
	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", filename, err)
	}

	err = f.Validate()
	if err != nil {
		return nil, fmt.Errorf("seed file validation failed: %w", err)
	}
	return &f, nil
}

// Defaults fills the empty fields of f the way the demo screen starts out:
// one contact with a generated number, a generated device id and emergency number.
func (f *File) Defaults(p *Provider) *File {
	if f.Profile.Name == "" {
		f.Profile.Name = "Benjamin"
	}
	if f.Profile.Status == "" {
		f.Profile.Status = "You are protected"
	}
	if f.DeviceID == "" {
		f.DeviceID = p.DeviceID()
	}
	if f.Contacts == nil {
		f.Contacts = []Contact{{Name: "Mom & Dad", Number: p.PhoneNumber()}}
	}
	if f.Number == "" {
		f.Number = p.PhoneNumber()
	}
	return f
}
