package resp

import (
	"context"
	"fmt"

	"github.com/xy-planning-network/respond"
)

// NewContext stores rw in ctx under respond.ResponseKey.
func NewContext(ctx context.Context, rw *Response) context.Context {
	return context.WithValue(ctx, respond.ResponseKey, rw)
}

// FromContext retrieves the *Response stored in ctx.
//
// If the middleware installing a *Response was not applied, ErrNoResponse returns.
func FromContext(ctx context.Context) (*Response, error) {
	val := ctx.Value(respond.ResponseKey)
	if val == nil {
		return nil, fmt.Errorf("%w: no value for %q", ErrNoResponse, respond.ResponseKey)
	}

	rw, ok := val.(*Response)
	if !ok {
		return nil, fmt.Errorf("%w: is not *resp.Response, is %T", ErrInvalid, val)
	}

	return rw, nil
}
