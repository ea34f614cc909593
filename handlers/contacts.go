package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/alerta/datastores"
)

type Contacts struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type ContactModel struct {
	ID ds.ContactID `json:"id" readOnly:"true"`

	Name   string `json:"name"   example:"Mom & Dad"`
	Number string `json:"number" example:"+49 165 1234567"`
}

func contactModel(c ds.Contact) ContactModel {
	return ContactModel{ID: c.ID, Name: c.Name, Number: c.Number}
}

// ContactInput is the writable part of [ContactModel].
type ContactInput struct {
	Name   string `json:"name"   example:"Sister"`
	Number string `json:"number" example:"+49 171 7654321"`
}

func (h *Contacts) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.list, h.ErrorHandler),
		opID("list-contacts"),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsListOutput struct {
	Body []ContactModel
}

func (h *Contacts) list(ctx context.Context, _ *struct{}) (*ContactsListOutput, error) {
	contacts, err := h.Store.List(ctx)
	if err != nil {
		return nil, err
	}

	body := make([]ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		body = append(body, contactModel(contact))
	}

	return &ContactsListOutput{Body: body}, nil
}

func (h *Contacts) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opID("get-contact"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactOutput struct {
	Body ContactModel
}

func (h *Contacts) get(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to get"`
}) (*ContactOutput, error) {
	contact, err := h.Store.Get(ctx, input.ID)
	if err != nil {
		return nil, statusError(err, h.Store.Limit())
	}
	return &ContactOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterPost(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/",
		handlerWithErrorHandler(h.post, h.ErrorHandler),
		opID("add-contact"),
		opStatus(http.StatusCreated),
		opErrors(http.StatusConflict, http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

func (h *Contacts) post(ctx context.Context, input *struct {
	Body ContactInput
}) (*ContactOutput, error) {
	contact := ds.Contact{Name: input.Body.Name, Number: input.Body.Number}
	_, err := h.Store.Create(ctx, &contact)
	if err != nil {
		return nil, statusError(err, h.Store.Limit())
	}
	return &ContactOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterPut(api huma.API) { // called by [huma.AutoRegister]
	huma.Put(api, "/{id}",
		handlerWithErrorHandler(h.put, h.ErrorHandler),
		opID("update-contact"),
		opErrors(http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

func (h *Contacts) put(ctx context.Context, input *struct {
	ID   ds.ContactID `path:"id" doc:"ID of the contact to update"`
	Body ContactInput
}) (*ContactOutput, error) {
	contact := ds.Contact{ID: input.ID, Name: input.Body.Name, Number: input.Body.Number}
	err := h.Store.Update(ctx, &contact)
	if err != nil {
		return nil, statusError(err, h.Store.Limit())
	}
	return &ContactOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterDel(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/{id}",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opID("delete-contact"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Contacts) del(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to delete"`
}) (*struct{}, error) {
	return nil, statusError(h.Store.Delete(ctx, input.ID), h.Store.Limit())
}
