package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/alerta/datastores"
	"github.com/oaiiae/alerta/editor"
)

// Sessions exposes the edit sessions of mounted screens. A client mounts one
// session per screen, drives it through open, buffer edits and commit, cancel
// or delete, and unmounts it when the screen goes away.
type Sessions struct {
	Sessions       *editor.Sessions
	DefaultVariant string
	ContactsLimit  int
	ErrorHandler   func(context.Context, error)
}

type SessionModel struct {
	ID        ds.UUID `json:"id"                  readOnly:"true"`
	Variant   string  `json:"variant"             enum:"contacts,number"`
	Open      bool    `json:"open"`
	Mode      string  `json:"mode"                enum:"closed,add,edit"`
	ContactID string  `json:"contactId,omitempty" doc:"contact being edited"`
	Name      string  `json:"name"`
	Number    string  `json:"number"`
}

func sessionModel(id ds.UUID, s *editor.Session) SessionModel {
	v := s.View()
	m := SessionModel{
		ID:      id,
		Variant: VariantNumber,
		Open:    v.Open,
		Mode:    v.Mode.String(),
		Name:    v.Buffer.Name,
		Number:  v.Buffer.Number,
	}
	if s.MultipleContacts() {
		m.Variant = VariantContacts
	}
	if !v.ContactID.IsZero() {
		m.ContactID = v.ContactID.String()
	}
	return m
}

type SessionOutput struct {
	Body SessionModel
}

type SessionPath struct {
	ID ds.UUID `path:"sid" doc:"ID of the edit session"`
}

func (h *Sessions) output(id ds.UUID, s *editor.Session) *SessionOutput {
	return &SessionOutput{Body: sessionModel(id, s)}
}

// lookup finds session id and calls do on it.
func (h *Sessions) lookup(id ds.UUID, do func(*editor.Session) error) (*SessionOutput, error) {
	s, err := h.Sessions.Get(id)
	if err == nil {
		err = do(s)
	}
	switch {
	case err == nil:
		return h.output(id, s), nil

	case errors.Is(err, ds.ErrValidation) && !s.MultipleContacts():
		return nil, withCause(huma.Error422UnprocessableEntity(noticeMissingNumber, err), err)

	default:
		return nil, statusError(err, h.ContactsLimit)
	}
}

func (h *Sessions) RegisterMount(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/",
		handlerWithErrorHandler(h.mount, h.ErrorHandler),
		opID("mount-session"),
		opStatus(http.StatusCreated),
	)
}

func (h *Sessions) mount(_ context.Context, input *struct {
	Body *struct {
		Variant string `json:"variant,omitempty" enum:"contacts,number" doc:"screen variant, the server default when empty"`
	}
}) (*SessionOutput, error) {
	variant := h.DefaultVariant
	if input.Body != nil && input.Body.Variant != "" {
		variant = input.Body.Variant
	}
	id, s := h.Sessions.Mount(variant != VariantNumber)
	return h.output(id, s), nil
}

func (h *Sessions) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{sid}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opID("get-session"),
		opErrors(http.StatusNotFound),
	)
}

func (h *Sessions) get(_ context.Context, input *SessionPath) (*SessionOutput, error) {
	return h.lookup(input.ID, func(*editor.Session) error { return nil })
}

func (h *Sessions) RegisterUnmount(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/{sid}",
		handlerWithErrorHandler(h.unmount, h.ErrorHandler),
		opID("unmount-session"),
		opErrors(http.StatusNotFound),
	)
}

func (h *Sessions) unmount(_ context.Context, input *SessionPath) (*struct{}, error) {
	return nil, statusError(h.Sessions.Unmount(input.ID), h.ContactsLimit)
}

func (h *Sessions) RegisterOpen(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/{sid}/open",
		handlerWithErrorHandler(h.open, h.ErrorHandler),
		opID("open-session"),
		opErrors(http.StatusBadRequest, http.StatusNotFound, http.StatusConflict),
	)
}

func (h *Sessions) open(ctx context.Context, input *struct {
	ID   ds.UUID `path:"sid" doc:"ID of the edit session"`
	Body struct {
		Mode      string       `json:"mode"                enum:"add,edit"`
		ContactID ds.ContactID `json:"contactId,omitempty" doc:"contact to edit, ignored on the number screen"`
	}
}) (*SessionOutput, error) {
	return h.lookup(input.ID, func(s *editor.Session) error {
		if input.Body.Mode == editor.ModeAdd.String() {
			return s.OpenAdd(ctx)
		}
		return s.OpenEdit(ctx, input.Body.ContactID)
	})
}

func (h *Sessions) RegisterBuffer(api huma.API) { // called by [huma.AutoRegister]
	huma.Patch(api, "/{sid}/buffer",
		handlerWithErrorHandler(h.buffer, h.ErrorHandler),
		opID("edit-session-buffer"),
		opErrors(http.StatusNotFound, http.StatusConflict),
	)
}

func (h *Sessions) buffer(_ context.Context, input *struct {
	ID   ds.UUID `path:"sid" doc:"ID of the edit session"`
	Body struct {
		Name   *string `json:"name,omitempty"   example:"Sister"`
		Number *string `json:"number,omitempty" example:"+49 171 7654321"`
	}
}) (*SessionOutput, error) {
	return h.lookup(input.ID, func(s *editor.Session) error {
		if input.Body.Name != nil {
			err := s.SetName(*input.Body.Name)
			if err != nil {
				return err
			}
		}
		if input.Body.Number != nil {
			return s.SetNumber(*input.Body.Number)
		}
		return nil
	})
}

func (h *Sessions) RegisterCommit(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/{sid}/commit",
		handlerWithErrorHandler(h.commit, h.ErrorHandler),
		opID("commit-session"),
		opErrors(http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity),
	)
}

type CommitOutput struct {
	Body struct {
		Session   SessionModel `json:"session"`
		ContactID string       `json:"contactId,omitempty" doc:"contact added or updated"`
	}
}

func (h *Sessions) commit(ctx context.Context, input *SessionPath) (*CommitOutput, error) {
	var id ds.ContactID
	session, err := h.lookup(input.ID, func(s *editor.Session) error {
		var err error
		id, err = s.Commit(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &CommitOutput{}
	out.Body.Session = session.Body
	if !id.IsZero() {
		out.Body.ContactID = id.String()
	}
	return out, nil
}

func (h *Sessions) RegisterDelete(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/{sid}/delete",
		handlerWithErrorHandler(h.delete, h.ErrorHandler),
		opID("delete-session-contact"),
		opErrors(http.StatusBadRequest, http.StatusNotFound, http.StatusConflict),
	)
}

func (h *Sessions) delete(ctx context.Context, input *SessionPath) (*SessionOutput, error) {
	return h.lookup(input.ID, func(s *editor.Session) error { return s.Delete(ctx) })
}

func (h *Sessions) RegisterCancel(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/{sid}/cancel",
		handlerWithErrorHandler(h.cancel, h.ErrorHandler),
		opID("cancel-session"),
		opErrors(http.StatusNotFound),
	)
}

func (h *Sessions) cancel(_ context.Context, input *SessionPath) (*SessionOutput, error) {
	return h.lookup(input.ID, func(s *editor.Session) error { s.Cancel(); return nil })
}
