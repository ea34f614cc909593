package handlers

import (
	"context"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/alerta/datastores"
)

// Profile serves the screen header: who is protected and by which device.
type Profile struct {
	Name     string
	Status   string
	DeviceID string
	Variant  string
	Contacts ds.ContactsStore

	ErrorHandler func(context.Context, error)
}

type ProfileModel struct {
	Greeting      string `json:"greeting"      example:"Hello, Benjamin"`
	Name          string `json:"name"          example:"Benjamin"`
	Initials      string `json:"initials"      example:"B"`
	Status        string `json:"status"        example:"You are protected"`
	DeviceID      string `json:"deviceId"      example:"ALERTA-K3J9Z0QWE"`
	Variant       string `json:"variant"       enum:"contacts,number"`
	Contacts      int    `json:"contacts"      example:"1"`
	ContactsLimit int    `json:"contactsLimit" example:"3"`
}

type ProfileOutput struct {
	Body ProfileModel
}

func (h *Profile) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opID("get-profile"),
		opErrors(http.StatusInternalServerError),
	)
}

func (h *Profile) get(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	n, err := h.Contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: ProfileModel{
		Greeting:      "Hello, " + h.Name,
		Name:          h.Name,
		Initials:      initials(h.Name),
		Status:        h.Status,
		DeviceID:      h.DeviceID,
		Variant:       h.Variant,
		Contacts:      n,
		ContactsLimit: h.Contacts.Limit(),
	}}, nil
}

func initials(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
