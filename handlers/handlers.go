package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/alerta/datastores"
	"github.com/oaiiae/alerta/editor"
)

// Screen variants.
const (
	VariantContacts = "contacts"
	VariantNumber   = "number"
)

// User facing notices, sent as the error detail.
const (
	noticeLimitReached   = "Limit Reached: You can only have up to %d emergency contacts."
	noticeMissingInfo    = "Missing Info: Please enter both a name and a phone number."
	noticeMissingNumber  = "Missing Info: Please enter a phone number."
	noticeNotImplemented = "Coming Soon: %s is not implemented in this prototype."
)

type handler[I, O any] = func(context.Context, *I) (*O, error)

func handlerWithErrorHandler[I, O any](handler handler[I, O], do func(context.Context, error)) handler[I, O] {
	if do == nil {
		return handler
	}

	return func(ctx context.Context, i *I) (*O, error) {
		o, err := handler(ctx, i)
		if err != nil {
			do(ctx, err)
		}
		return o, err
	}
}

func opErrors(codes ...int) func(*huma.Operation) {
	return func(o *huma.Operation) { o.Errors = codes }
}

func opID(id string) func(*huma.Operation) {
	return func(o *huma.Operation) { o.OperationID = id }
}

func opStatus(code int) func(*huma.Operation) {
	return func(o *huma.Operation) { o.DefaultStatus = code }
}

// statusError maps store and editor errors to HTTP errors.
// The mapped error still wraps err so the error handler sees the cause.
// Errors it does not know are returned as is and end up as 500.
func statusError(err error, limit int) error {
	var se huma.StatusError
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		se = huma.Error404NotFound("id not found", err)

	case errors.Is(err, editor.ErrNoSession):
		se = huma.Error404NotFound("session not found", err)

	case errors.Is(err, ds.ErrCapacityExceeded):
		se = huma.Error409Conflict(fmt.Sprintf(noticeLimitReached, limit), err)

	case errors.Is(err, ds.ErrValidation):
		se = huma.Error422UnprocessableEntity(noticeMissingInfo, err)

	case errors.Is(err, editor.ErrNotOpen), errors.Is(err, editor.ErrAlreadyOpen):
		se = huma.Error409Conflict("edit session state does not allow this action", err)

	case errors.Is(err, editor.ErrUnsupported):
		se = huma.Error400BadRequest("action not supported on this screen", err)

	default:
		return err
	}
	return withCause(se, err)
}

// withCause wraps both se and err, huma writes se and [errors.Is] finds err.
func withCause(se huma.StatusError, err error) error {
	return fmt.Errorf("%w: %w", se, err)
}
