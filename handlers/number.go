package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/alerta/datastores"
)

// Number serves the single emergency number of the number screen.
type Number struct {
	Store        ds.NumberStore
	ErrorHandler func(context.Context, error)
}

type NumberModel struct {
	Number string `json:"number" example:"+49 165 1234567"`
}

type NumberOutput struct {
	Body NumberModel
}

func (h *Number) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opID("get-number"),
		opErrors(http.StatusInternalServerError),
	)
}

func (h *Number) get(ctx context.Context, _ *struct{}) (*NumberOutput, error) {
	number, err := h.Store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &NumberOutput{Body: NumberModel{Number: number}}, nil
}

func (h *Number) RegisterPut(api huma.API) { // called by [huma.AutoRegister]
	huma.Put(api, "/",
		handlerWithErrorHandler(h.put, h.ErrorHandler),
		opID("set-number"),
		opErrors(http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

func (h *Number) put(ctx context.Context, input *struct {
	Body NumberModel
}) (*NumberOutput, error) {
	err := h.Store.Set(ctx, input.Body.Number)
	switch {
	case err == nil:
		return &NumberOutput{Body: input.Body}, nil

	case errors.Is(err, ds.ErrValidation):
		return nil, withCause(huma.Error422UnprocessableEntity(noticeMissingNumber, err), err)

	default:
		return nil, err
	}
}
