package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	ds "github.com/oaiiae/alerta/datastores"
	"github.com/oaiiae/alerta/editor"
)

type testEnv struct {
	api      humatest.TestAPI
	contacts *ds.ContactsInmem
	number   *ds.NumberInmem
	errs     []error
}

// newTestEnv mounts every handler the way the server does, under their groups.
func newTestEnv(t *testing.T, cs ...ds.Contact) *testEnv {
	t.Helper()
	_, api := humatest.New(t)

	contacts, err := ds.NewContactsInmem(ds.DefaultContactsLimit, cs...)
	require.NoError(t, err)
	env := &testEnv{api: api, contacts: contacts, number: ds.NewNumberInmem("+49 165 1234567")}
	errorHandler := func(_ context.Context, err error) { env.errs = append(env.errs, err) }

	huma.AutoRegister(huma.NewGroup(api, "/profile"), &Profile{
		Name:     "Benjamin",
		Status:   "You are protected",
		DeviceID: "ALERTA-TEST00001",
		Variant:  VariantContacts,
		Contacts: contacts,

		ErrorHandler: errorHandler,
	})
	huma.AutoRegister(huma.NewGroup(api, "/contacts"), &Contacts{Store: contacts, ErrorHandler: errorHandler})
	huma.AutoRegister(huma.NewGroup(api, "/number"), &Number{Store: env.number, ErrorHandler: errorHandler})
	huma.AutoRegister(huma.NewGroup(api, "/sessions"), &Sessions{
		Sessions:       editor.NewSessions(contacts, env.number, 0),
		DefaultVariant: VariantContacts,
		ContactsLimit:  contacts.Limit(),
		ErrorHandler:   errorHandler,
	})
	huma.AutoRegister(huma.NewGroup(api, "/settings"), &Settings{})
	return env
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v), resp.Body.String())
	return v
}

type errorBody struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}
